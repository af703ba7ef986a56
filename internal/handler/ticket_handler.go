package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"
	"github.com/whitebay/backoffice/internal/dto"
	"github.com/whitebay/backoffice/internal/repository"
	"github.com/whitebay/backoffice/internal/service"
)

const qrSize = 256

type TicketHandler struct {
	svc       service.TicketService
	purchases repository.TicketPurchaseRepository
}

func NewTicketHandler(svc service.TicketService, purchases repository.TicketPurchaseRepository) *TicketHandler {
	return &TicketHandler{svc: svc, purchases: purchases}
}

func (h *TicketHandler) RegisterActions(g *echo.Group) {
	g.GET("/code/:code", h.GetByCode)
	g.GET("/:id/qr", h.QRCode)
	g.POST("/:id/cancel", h.Cancel)
	g.POST("/:id/use", h.MarkUsed)
}

func (h *TicketHandler) Purchase(c echo.Context) error {
	var req dto.PurchaseTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EventID == "" || req.TicketTypeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "eventId and ticketTypeId are required")
	}
	if req.Quantity < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
	}

	purchase, err := h.svc.Purchase(c.Request().Context(), service.PurchaseInput{
		EventID:      req.EventID,
		TicketTypeID: req.TicketTypeID,
		Quantity:     req.Quantity,
		BuyerName:    req.BuyerName,
		BuyerEmail:   req.BuyerEmail,
		BuyerPhone:   req.BuyerPhone,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, purchase)
}

func (h *TicketHandler) GetByCode(c echo.Context) error {
	p, err := h.purchases.FindByConfirmationCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// QRCode renders the confirmation code as a PNG for door scanning.
func (h *TicketHandler) QRCode(c echo.Context) error {
	p, err := h.purchases.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	png, err := qrcode.Encode(p.ConfirmationCode, qrcode.Medium, qrSize)
	if err != nil {
		return httpError(err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *TicketHandler) Cancel(c echo.Context) error {
	p, err := h.svc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *TicketHandler) MarkUsed(c echo.Context) error {
	p, err := h.svc.MarkUsed(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/whitebay/backoffice/internal/dto"
	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/repository"
)

type MessageHandler struct {
	messages repository.MessageRepository
	now      func() time.Time
}

func NewMessageHandler(messages repository.MessageRepository, now func() time.Time) *MessageHandler {
	if now == nil {
		now = time.Now
	}
	return &MessageHandler{messages: messages, now: now}
}

func (h *MessageHandler) RegisterActions(g *echo.Group) {
	g.POST("/:id/status", h.SetStatus)
	g.POST("/:id/reply", h.Reply)
}

func (h *MessageHandler) SetStatus(c echo.Context) error {
	var req dto.StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	status := models.MessageStatus(req.Status)
	if !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown message status")
	}
	msg, err := h.messages.SetStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) Reply(c echo.Context) error {
	var req dto.ReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Reply) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reply is required")
	}
	msg, err := h.messages.Reply(c.Request().Context(), c.Param("id"), req.Reply, h.now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

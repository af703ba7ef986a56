package dto

import "time"

type CreateBookingRequest struct {
	RoomID          string    `json:"roomId"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail"`
	GuestPhone      string    `json:"guestPhone"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int       `json:"guests"`
	TotalAmount     *float64  `json:"totalAmount"`
	PaidAmount      float64   `json:"paidAmount"`
	SpecialRequests string    `json:"specialRequests"`
}

type PurchaseTicketRequest struct {
	EventID      string `json:"eventId"`
	TicketTypeID string `json:"ticketTypeId"`
	Quantity     int    `json:"quantity"`
	BuyerName    string `json:"buyerName"`
	BuyerEmail   string `json:"buyerEmail"`
	BuyerPhone   string `json:"buyerPhone"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type PaymentRequest struct {
	Amount float64 `json:"amount"`
}

type ReplyRequest struct {
	Reply string `json:"reply"`
}

type ActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

type VIPRequest struct {
	IsVIP *bool `json:"isVip"`
}

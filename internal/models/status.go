package models

type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked-in"
	BookingCheckedOut BookingStatus = "checked-out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingNoShow     BookingStatus = "no-show"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingCheckedIn, BookingCancelled, BookingNoShow},
	BookingCheckedIn: {BookingCheckedOut},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from s to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	return allowed(bookingTransitions, s, next)
}

// Active bookings hold their room.
func (s BookingStatus) Active() bool {
	return s == BookingConfirmed || s == BookingCheckedIn
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// PaymentStatusFor derives the payment status from amounts.
func PaymentStatusFor(paid, total float64) PaymentStatus {
	switch {
	case paid <= 0:
		return PaymentPending
	case paid < total:
		return PaymentPartial
	default:
		return PaymentPaid
	}
}

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomReserved    RoomStatus = "reserved"
)

// Manual changes only; reconciliation sets occupied/reserved/available directly.
var roomTransitions = map[RoomStatus][]RoomStatus{
	RoomAvailable:   {RoomMaintenance},
	RoomReserved:    {RoomMaintenance},
	RoomOccupied:    {RoomMaintenance},
	RoomMaintenance: {RoomAvailable},
}

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomReserved:
		return true
	}
	return false
}

func (s RoomStatus) CanTransition(next RoomStatus) bool {
	return allowed(roomTransitions, s, next)
}

type MessageStatus string

const (
	MessageNew     MessageStatus = "new"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
	MessageClosed  MessageStatus = "closed"
)

var messageTransitions = map[MessageStatus][]MessageStatus{
	MessageNew:     {MessageRead, MessageReplied, MessageClosed},
	MessageRead:    {MessageReplied, MessageClosed},
	MessageReplied: {MessageClosed, MessageRead},
}

func (s MessageStatus) Valid() bool {
	switch s {
	case MessageNew, MessageRead, MessageReplied, MessageClosed:
		return true
	}
	return false
}

func (s MessageStatus) CanTransition(next MessageStatus) bool {
	return allowed(messageTransitions, s, next)
}

type TicketStatus string

const (
	TicketConfirmed TicketStatus = "confirmed"
	TicketCancelled TicketStatus = "cancelled"
	TicketUsed      TicketStatus = "used"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketConfirmed: {TicketUsed, TicketCancelled},
}

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketConfirmed, TicketCancelled, TicketUsed:
		return true
	}
	return false
}

func (s TicketStatus) CanTransition(next TicketStatus) bool {
	return allowed(ticketTransitions, s, next)
}

// allowed treats re-setting the current status as a no-op success.
func allowed[S comparable](table map[S][]S, from, to S) bool {
	if from == to {
		return true
	}
	for _, s := range table[from] {
		if s == to {
			return true
		}
	}
	return false
}

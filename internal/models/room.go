package models

import "time"

type RoomType string

const (
	RoomStandard     RoomType = "standard"
	RoomDeluxe       RoomType = "deluxe"
	RoomJuniorSuite  RoomType = "junior-suite"
	RoomSuite        RoomType = "suite"
	RoomPresidential RoomType = "presidential-suite"
	RoomVilla        RoomType = "villa"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomStandard, RoomDeluxe, RoomJuniorSuite, RoomSuite, RoomPresidential, RoomVilla:
		return true
	}
	return false
}

type Room struct {
	Meta
	RoomNumber    string     `json:"roomNumber"`
	Name          string     `json:"name"`
	Type          RoomType   `json:"type"`
	Floor         int        `json:"floor"`
	PricePerNight float64    `json:"pricePerNight"`
	Capacity      int        `json:"capacity"`
	Status        RoomStatus `json:"status"`
	Amenities     []string   `json:"amenities,omitempty"`
	Description   string     `json:"description,omitempty"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	IsActive      bool       `json:"isActive"`
}

// RoomPatch leaves Status out; manual status changes go through the transition table.
type RoomPatch struct {
	RoomNumber    Optional[string]   `json:"roomNumber"`
	Name          Optional[string]   `json:"name"`
	Type          Optional[RoomType] `json:"type"`
	Floor         Optional[int]      `json:"floor"`
	PricePerNight Optional[float64]  `json:"pricePerNight"`
	Capacity      Optional[int]      `json:"capacity"`
	Amenities     Optional[[]string] `json:"amenities"`
	Description   Optional[string]   `json:"description"`
	ImageURL      Optional[string]   `json:"imageUrl"`
	IsActive      Optional[bool]     `json:"isActive"`
}

func (p RoomPatch) Apply(r *Room) {
	p.RoomNumber.ApplyTo(&r.RoomNumber)
	p.Name.ApplyTo(&r.Name)
	p.Type.ApplyTo(&r.Type)
	p.Floor.ApplyTo(&r.Floor)
	p.PricePerNight.ApplyTo(&r.PricePerNight)
	p.Capacity.ApplyTo(&r.Capacity)
	p.Amenities.ApplyTo(&r.Amenities)
	p.Description.ApplyTo(&r.Description)
	p.ImageURL.ApplyTo(&r.ImageURL)
	p.IsActive.ApplyTo(&r.IsActive)
}

type RoomBooking struct {
	Meta
	BookingCode        string        `json:"bookingCode"`
	RoomID             string        `json:"roomId"`
	RoomNumber         string        `json:"roomNumber"`
	RoomName           string        `json:"roomName"`
	GuestName          string        `json:"guestName"`
	GuestEmail         string        `json:"guestEmail"`
	GuestPhone         string        `json:"guestPhone,omitempty"`
	CheckIn            time.Time     `json:"checkIn"`
	CheckOut           time.Time     `json:"checkOut"`
	Guests             int           `json:"guests"`
	TotalAmount        float64       `json:"totalAmount"`
	PaidAmount         float64       `json:"paidAmount"`
	PaymentStatus      PaymentStatus `json:"paymentStatus"`
	Status             BookingStatus `json:"status"`
	SpecialRequests    string        `json:"specialRequests,omitempty"`
	CancelledAt        *time.Time    `json:"cancelledAt,omitempty"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
}

// Covers reports whether now falls inside [CheckIn, CheckOut).
func (b RoomBooking) Covers(now time.Time) bool {
	return !now.Before(b.CheckIn) && now.Before(b.CheckOut)
}

// Overlaps reports whether the stay window intersects [from, to).
func (b RoomBooking) Overlaps(from, to time.Time) bool {
	return b.CheckIn.Before(to) && from.Before(b.CheckOut)
}

func (b RoomBooking) Nights() int {
	n := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// RoomBookingPatch covers guest contact and stay details. The room reference,
// status and payment fields have dedicated operations.
type RoomBookingPatch struct {
	GuestName       Optional[string]    `json:"guestName"`
	GuestEmail      Optional[string]    `json:"guestEmail"`
	GuestPhone      Optional[string]    `json:"guestPhone"`
	CheckIn         Optional[time.Time] `json:"checkIn"`
	CheckOut        Optional[time.Time] `json:"checkOut"`
	Guests          Optional[int]       `json:"guests"`
	TotalAmount     Optional[float64]   `json:"totalAmount"`
	SpecialRequests Optional[string]    `json:"specialRequests"`
}

func (p RoomBookingPatch) Apply(b *RoomBooking) {
	p.GuestName.ApplyTo(&b.GuestName)
	p.GuestEmail.ApplyTo(&b.GuestEmail)
	p.GuestPhone.ApplyTo(&b.GuestPhone)
	p.CheckIn.ApplyTo(&b.CheckIn)
	p.CheckOut.ApplyTo(&b.CheckOut)
	p.Guests.ApplyTo(&b.Guests)
	p.TotalAmount.ApplyTo(&b.TotalAmount)
	p.SpecialRequests.ApplyTo(&b.SpecialRequests)
}

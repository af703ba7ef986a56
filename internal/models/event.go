package models

import "time"

type EventCategory string

const (
	CategoryEntertainment EventCategory = "entertainment"
	CategoryDining        EventCategory = "dining"
	CategoryWellness      EventCategory = "wellness"
	CategorySports        EventCategory = "sports"
	CategoryCultural      EventCategory = "cultural"
	CategoryKids          EventCategory = "kids"
)

func (c EventCategory) Valid() bool {
	switch c {
	case CategoryEntertainment, CategoryDining, CategoryWellness, CategorySports, CategoryCultural, CategoryKids:
		return true
	}
	return false
}

// TicketType is embedded in its event; order is preserved.
type TicketType struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Available   int     `json:"available"`
	Sold        int     `json:"sold"`
	Description string  `json:"description,omitempty"`
}

type Event struct {
	Meta
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Date            string        `json:"date"`
	StartTime       string        `json:"startTime"`
	EndTime         string        `json:"endTime"`
	Location        string        `json:"location"`
	Category        EventCategory `json:"category"`
	Capacity        int           `json:"capacity"`
	RegisteredCount int           `json:"registeredCount"`
	Price           float64       `json:"price"`
	ImageURL        string        `json:"imageUrl,omitempty"`
	IsActive        bool          `json:"isActive"`
	IsFeatured      bool          `json:"isFeatured"`
	TicketTypes     []TicketType  `json:"ticketTypes,omitempty"`
}

// StartsAt parses Date and StartTime in loc. Events without a parseable date
// report ok=false.
func (e Event) StartsAt(loc *time.Location) (time.Time, bool) {
	if e.StartTime != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04", e.Date+" "+e.StartTime, loc); err == nil {
			return t, true
		}
	}
	t, err := time.ParseInLocation("2006-01-02", e.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (e *Event) TicketType(id string) (*TicketType, bool) {
	for i := range e.TicketTypes {
		if e.TicketTypes[i].ID == id {
			return &e.TicketTypes[i], true
		}
	}
	return nil, false
}

type EventPatch struct {
	Title           Optional[string]        `json:"title"`
	Description     Optional[string]        `json:"description"`
	Date            Optional[string]        `json:"date"`
	StartTime       Optional[string]        `json:"startTime"`
	EndTime         Optional[string]        `json:"endTime"`
	Location        Optional[string]        `json:"location"`
	Category        Optional[EventCategory] `json:"category"`
	Capacity        Optional[int]           `json:"capacity"`
	RegisteredCount Optional[int]           `json:"registeredCount"`
	Price           Optional[float64]       `json:"price"`
	ImageURL        Optional[string]        `json:"imageUrl"`
	IsActive        Optional[bool]          `json:"isActive"`
	IsFeatured      Optional[bool]          `json:"isFeatured"`
	TicketTypes     Optional[[]TicketType]  `json:"ticketTypes"`
}

func (p EventPatch) Apply(e *Event) {
	p.Title.ApplyTo(&e.Title)
	p.Description.ApplyTo(&e.Description)
	p.Date.ApplyTo(&e.Date)
	p.StartTime.ApplyTo(&e.StartTime)
	p.EndTime.ApplyTo(&e.EndTime)
	p.Location.ApplyTo(&e.Location)
	p.Category.ApplyTo(&e.Category)
	p.Capacity.ApplyTo(&e.Capacity)
	p.RegisteredCount.ApplyTo(&e.RegisteredCount)
	p.Price.ApplyTo(&e.Price)
	p.ImageURL.ApplyTo(&e.ImageURL)
	p.IsActive.ApplyTo(&e.IsActive)
	p.IsFeatured.ApplyTo(&e.IsFeatured)
	p.TicketTypes.ApplyTo(&e.TicketTypes)
}

type TicketPurchase struct {
	Meta
	EventID          string       `json:"eventId"`
	EventTitle       string       `json:"eventTitle"`
	TicketTypeID     string       `json:"ticketTypeId"`
	TicketTypeName   string       `json:"ticketTypeName"`
	Quantity         int          `json:"quantity"`
	TotalPrice       float64      `json:"totalPrice"`
	BuyerName        string       `json:"buyerName"`
	BuyerEmail       string       `json:"buyerEmail"`
	BuyerPhone       string       `json:"buyerPhone,omitempty"`
	ConfirmationCode string       `json:"confirmationCode"`
	Status           TicketStatus `json:"status"`
	PurchasedAt      time.Time    `json:"purchasedAt"`
}

// TicketPurchasePatch covers the buyer contact only; status moves through SetStatus.
type TicketPurchasePatch struct {
	BuyerName  Optional[string] `json:"buyerName"`
	BuyerEmail Optional[string] `json:"buyerEmail"`
	BuyerPhone Optional[string] `json:"buyerPhone"`
}

func (p TicketPurchasePatch) Apply(t *TicketPurchase) {
	p.BuyerName.ApplyTo(&t.BuyerName)
	p.BuyerEmail.ApplyTo(&t.BuyerEmail)
	p.BuyerPhone.ApplyTo(&t.BuyerPhone)
}

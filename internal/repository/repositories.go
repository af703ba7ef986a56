package repository

// Repositories bundles one repository per collection over a shared store.
type Repositories struct {
	Events          EventRepository
	TicketPurchases TicketPurchaseRepository
	Guests          GuestRepository
	Announcements   AnnouncementRepository
	Staff           StaffRepository
	Messages        MessageRepository
	Promotions      PromotionRepository
	Rooms           RoomRepository
	RoomBookings    RoomBookingRepository
}

func New(d Deps) *Repositories {
	return &Repositories{
		Events:          NewEventRepository(d),
		TicketPurchases: NewTicketPurchaseRepository(d),
		Guests:          NewGuestRepository(d),
		Announcements:   NewAnnouncementRepository(d),
		Staff:           NewStaffRepository(d),
		Messages:        NewMessageRepository(d),
		Promotions:      NewPromotionRepository(d),
		Rooms:           NewRoomRepository(d),
		RoomBookings:    NewRoomBookingRepository(d),
	}
}

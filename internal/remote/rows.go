package remote

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

type Room struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	RoomNumber  string    `json:"room_number"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Amenities   []string  `json:"amenities,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

type Booking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	RoomID     string        `json:"room_id"`
	CheckIn    string        `json:"check_in"`
	CheckOut   string        `json:"check_out"`
	Guests     int           `json:"guests"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingWithGuest is a booking with its guest and room details inlined.
type BookingWithGuest struct {
	Booking
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	RoomName   string `json:"room_name"`
	RoomNumber string `json:"room_number"`
}

type DashboardStats struct {
	TotalBookings     int     `json:"totalBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

type bookingJoinRow struct {
	Booking
	Users *struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
	} `json:"users"`
	Rooms *struct {
		Name       string `json:"name"`
		RoomNumber string `json:"room_number"`
	} `json:"rooms"`
}

func (r bookingJoinRow) flatten() BookingWithGuest {
	out := BookingWithGuest{Booking: r.Booking}
	if r.Users != nil {
		out.GuestName = r.Users.FullName
		out.GuestEmail = r.Users.Email
	}
	if r.Rooms != nil {
		out.RoomName = r.Rooms.Name
		out.RoomNumber = r.Rooms.RoomNumber
	}
	return out
}

package models

import "time"

type Guest struct {
	Meta
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	RoomNumber  string     `json:"roomNumber,omitempty"`
	CheckIn     *time.Time `json:"checkIn,omitempty"`
	CheckOut    *time.Time `json:"checkOut,omitempty"`
	IsVIP       bool       `json:"isVip"`
	Notes       string     `json:"notes,omitempty"`
	Preferences []string   `json:"preferences,omitempty"`
}

type GuestPatch struct {
	Name        Optional[string]     `json:"name"`
	Email       Optional[string]     `json:"email"`
	Phone       Optional[string]     `json:"phone"`
	RoomNumber  Optional[string]     `json:"roomNumber"`
	CheckIn     Optional[*time.Time] `json:"checkIn"`
	CheckOut    Optional[*time.Time] `json:"checkOut"`
	IsVIP       Optional[bool]       `json:"isVip"`
	Notes       Optional[string]     `json:"notes"`
	Preferences Optional[[]string]   `json:"preferences"`
}

func (p GuestPatch) Apply(g *Guest) {
	p.Name.ApplyTo(&g.Name)
	p.Email.ApplyTo(&g.Email)
	p.Phone.ApplyTo(&g.Phone)
	p.RoomNumber.ApplyTo(&g.RoomNumber)
	p.CheckIn.ApplyTo(&g.CheckIn)
	p.CheckOut.ApplyTo(&g.CheckOut)
	p.IsVIP.ApplyTo(&g.IsVIP)
	p.Notes.ApplyTo(&g.Notes)
	p.Preferences.ApplyTo(&g.Preferences)
}

type StaffRole string

const (
	RoleStaff   StaffRole = "staff"
	RoleManager StaffRole = "manager"
	RoleAdmin   StaffRole = "admin"
)

func (r StaffRole) Valid() bool {
	return r == RoleStaff || r == RoleManager || r == RoleAdmin
}

type StaffMember struct {
	Meta
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Role        StaffRole `json:"role"`
	Department  string    `json:"department"`
	IsActive    bool      `json:"isActive"`
	Permissions []string  `json:"permissions,omitempty"`
}

type StaffPatch struct {
	Name        Optional[string]    `json:"name"`
	Email       Optional[string]    `json:"email"`
	Phone       Optional[string]    `json:"phone"`
	Role        Optional[StaffRole] `json:"role"`
	Department  Optional[string]    `json:"department"`
	IsActive    Optional[bool]      `json:"isActive"`
	Permissions Optional[[]string]  `json:"permissions"`
}

func (p StaffPatch) Apply(s *StaffMember) {
	p.Name.ApplyTo(&s.Name)
	p.Email.ApplyTo(&s.Email)
	p.Phone.ApplyTo(&s.Phone)
	p.Role.ApplyTo(&s.Role)
	p.Department.ApplyTo(&s.Department)
	p.IsActive.ApplyTo(&s.IsActive)
	p.Permissions.ApplyTo(&s.Permissions)
}

type MessageType string

const (
	MessageInquiry   MessageType = "inquiry"
	MessageFeedback  MessageType = "feedback"
	MessageComplaint MessageType = "complaint"
	MessageBooking   MessageType = "booking"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageInquiry, MessageFeedback, MessageComplaint, MessageBooking:
		return true
	}
	return false
}

type Message struct {
	Meta
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Type      MessageType   `json:"type"`
	Status    MessageStatus `json:"status"`
	Reply     string        `json:"reply,omitempty"`
	RepliedAt *time.Time    `json:"repliedAt,omitempty"`
}

type MessagePatch struct {
	Name    Optional[string]      `json:"name"`
	Email   Optional[string]      `json:"email"`
	Phone   Optional[string]      `json:"phone"`
	Subject Optional[string]      `json:"subject"`
	Message Optional[string]      `json:"message"`
	Type    Optional[MessageType] `json:"type"`
}

func (p MessagePatch) Apply(m *Message) {
	p.Name.ApplyTo(&m.Name)
	p.Email.ApplyTo(&m.Email)
	p.Phone.ApplyTo(&m.Phone)
	p.Subject.ApplyTo(&m.Subject)
	p.Message.ApplyTo(&m.Message)
	p.Type.ApplyTo(&m.Type)
}

package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Audience string

const (
	AudienceAll    Audience = "all"
	AudienceGuests Audience = "guests"
	AudienceStaff  Audience = "staff"
)

func (a Audience) Valid() bool {
	return a == AudienceAll || a == AudienceGuests || a == AudienceStaff
}

type Announcement struct {
	Meta
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Priority       Priority   `json:"priority"`
	TargetAudience Audience   `json:"targetAudience"`
	IsActive       bool       `json:"isActive"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	CreatedBy      string     `json:"createdBy,omitempty"`
}

// IsExpired is a display helper; it never changes IsActive.
func (a Announcement) IsExpired(now time.Time) bool {
	return a.EndDate != nil && a.EndDate.Before(now)
}

type AnnouncementPatch struct {
	Title          Optional[string]     `json:"title"`
	Content        Optional[string]     `json:"content"`
	Priority       Optional[Priority]   `json:"priority"`
	TargetAudience Optional[Audience]   `json:"targetAudience"`
	IsActive       Optional[bool]       `json:"isActive"`
	StartDate      Optional[time.Time]  `json:"startDate"`
	EndDate        Optional[*time.Time] `json:"endDate"`
	CreatedBy      Optional[string]     `json:"createdBy"`
}

func (p AnnouncementPatch) Apply(a *Announcement) {
	p.Title.ApplyTo(&a.Title)
	p.Content.ApplyTo(&a.Content)
	p.Priority.ApplyTo(&a.Priority)
	p.TargetAudience.ApplyTo(&a.TargetAudience)
	p.IsActive.ApplyTo(&a.IsActive)
	p.StartDate.ApplyTo(&a.StartDate)
	p.EndDate.ApplyTo(&a.EndDate)
	p.CreatedBy.ApplyTo(&a.CreatedBy)
}

type Promotion struct {
	Meta
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Discount    string    `json:"discount"`
	Terms       []string  `json:"terms,omitempty"`
	ValidFrom   time.Time `json:"validFrom"`
	ValidUntil  time.Time `json:"validUntil"`
	IsActive    bool      `json:"isActive"`
	UsageCount  int       `json:"usageCount"`
	MaxUsage    *int      `json:"maxUsage,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// IsExpired is a display helper; it never changes IsActive.
// A zero ValidUntil means the promotion has no end date.
func (p Promotion) IsExpired(now time.Time) bool {
	return !p.ValidUntil.IsZero() && p.ValidUntil.Before(now)
}

func (p Promotion) Exhausted() bool {
	return p.MaxUsage != nil && p.UsageCount >= *p.MaxUsage
}

type PromotionPatch struct {
	Name        Optional[string]    `json:"name"`
	Code        Optional[string]    `json:"code"`
	Description Optional[string]    `json:"description"`
	Discount    Optional[string]    `json:"discount"`
	Terms       Optional[[]string]  `json:"terms"`
	ValidFrom   Optional[time.Time] `json:"validFrom"`
	ValidUntil  Optional[time.Time] `json:"validUntil"`
	IsActive    Optional[bool]      `json:"isActive"`
	UsageCount  Optional[int]       `json:"usageCount"`
	MaxUsage    Optional[*int]      `json:"maxUsage"`
	ImageURL    Optional[string]    `json:"imageUrl"`
}

func (p PromotionPatch) Apply(pr *Promotion) {
	p.Name.ApplyTo(&pr.Name)
	p.Code.ApplyTo(&pr.Code)
	p.Description.ApplyTo(&pr.Description)
	p.Discount.ApplyTo(&pr.Discount)
	p.Terms.ApplyTo(&pr.Terms)
	p.ValidFrom.ApplyTo(&pr.ValidFrom)
	p.ValidUntil.ApplyTo(&pr.ValidUntil)
	p.IsActive.ApplyTo(&pr.IsActive)
	p.UsageCount.ApplyTo(&pr.UsageCount)
	p.MaxUsage.ApplyTo(&pr.MaxUsage)
	p.ImageURL.ApplyTo(&pr.ImageURL)
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/store"
)

type GuestRepository interface {
	CRUD[models.Guest, models.GuestPatch]
	SetVIP(ctx context.Context, id string, vip bool) (models.Guest, error)
}

type guestRepository struct {
	*crud[models.Guest, *models.Guest, models.GuestPatch]
}

func NewGuestRepository(d Deps) GuestRepository {
	return &guestRepository{
		crud: newCRUD[models.Guest, *models.Guest, models.GuestPatch](d, store.KeyGuests, "guests", prepareGuest),
	}
}

func prepareGuest(_ []models.Guest, g *models.Guest, _ bool) error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("guest name is required")
	}
	if g.CheckIn != nil && g.CheckOut != nil && !g.CheckOut.After(*g.CheckIn) {
		return invalid("check-out must be after check-in")
	}
	return nil
}

func (r *guestRepository) SetVIP(ctx context.Context, id string, vip bool) (models.Guest, error) {
	return r.Update(ctx, id, models.GuestPatch{IsVIP: models.Some(vip)})
}

type StaffRepository interface {
	CRUD[models.StaffMember, models.StaffPatch]
	FindByEmail(ctx context.Context, email string) (models.StaffMember, error)
	SetActive(ctx context.Context, id string, active bool) (models.StaffMember, error)
}

type staffRepository struct {
	*crud[models.StaffMember, *models.StaffMember, models.StaffPatch]
}

func NewStaffRepository(d Deps) StaffRepository {
	return &staffRepository{
		crud: newCRUD[models.StaffMember, *models.StaffMember, models.StaffPatch](d, store.KeyStaff, "staff", prepareStaff),
	}
}

func prepareStaff(items []models.StaffMember, s *models.StaffMember, creating bool) error {
	if strings.TrimSpace(s.Name) == "" {
		return invalid("staff name is required")
	}
	s.Email = strings.TrimSpace(s.Email)
	if creating && s.Role == "" {
		s.Role = models.RoleStaff
	}
	if !s.Role.Valid() {
		return invalid("unknown role %q", s.Role)
	}
	if s.Email == "" {
		return nil
	}
	for _, other := range items {
		if other.ID != s.ID && strings.EqualFold(other.Email, s.Email) {
			return fmt.Errorf("%w: staff email %s already exists", ErrConflict, s.Email)
		}
	}
	return nil
}

func (r *staffRepository) FindByEmail(ctx context.Context, email string) (models.StaffMember, error) {
	s, ok := r.Find(ctx, func(s models.StaffMember) bool { return strings.EqualFold(s.Email, email) })
	if !ok {
		return s, ErrNotFound
	}
	return s, nil
}

func (r *staffRepository) SetActive(ctx context.Context, id string, active bool) (models.StaffMember, error) {
	return r.Update(ctx, id, models.StaffPatch{IsActive: models.Some(active)})
}

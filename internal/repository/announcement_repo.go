package repository

import (
	"context"
	"strings"

	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/store"
)

type AnnouncementRepository interface {
	CRUD[models.Announcement, models.AnnouncementPatch]
	SetActive(ctx context.Context, id string, active bool) (models.Announcement, error)
	Batch(ctx context.Context, fn func(items []models.Announcement) ([]models.Announcement, bool)) error
}

type announcementRepository struct {
	*crud[models.Announcement, *models.Announcement, models.AnnouncementPatch]
}

func NewAnnouncementRepository(d Deps) AnnouncementRepository {
	return &announcementRepository{
		crud: newCRUD[models.Announcement, *models.Announcement, models.AnnouncementPatch](d, store.KeyAnnouncements, "announcements", prepareAnnouncement),
	}
}

func prepareAnnouncement(_ []models.Announcement, a *models.Announcement, creating bool) error {
	if strings.TrimSpace(a.Title) == "" {
		return invalid("announcement title is required")
	}
	if creating {
		if a.Priority == "" {
			a.Priority = models.PriorityMedium
		}
		if a.TargetAudience == "" {
			a.TargetAudience = models.AudienceAll
		}
	}
	if !a.Priority.Valid() {
		return invalid("unknown priority %q", a.Priority)
	}
	if !a.TargetAudience.Valid() {
		return invalid("unknown audience %q", a.TargetAudience)
	}
	if a.EndDate != nil && !a.StartDate.IsZero() && a.EndDate.Before(a.StartDate) {
		return invalid("endDate must not be before startDate")
	}
	return nil
}

func (r *announcementRepository) SetActive(ctx context.Context, id string, active bool) (models.Announcement, error) {
	return r.Update(ctx, id, models.AnnouncementPatch{IsActive: models.Some(active)})
}

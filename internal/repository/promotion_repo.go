package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/store"
)

type PromotionRepository interface {
	CRUD[models.Promotion, models.PromotionPatch]
	FindByCode(ctx context.Context, code string) (models.Promotion, error)
	SetActive(ctx context.Context, id string, active bool) (models.Promotion, error)
	RecordUsage(ctx context.Context, id string) (models.Promotion, error)
	Batch(ctx context.Context, fn func(items []models.Promotion) ([]models.Promotion, bool)) error
}

type promotionRepository struct {
	*crud[models.Promotion, *models.Promotion, models.PromotionPatch]
}

func NewPromotionRepository(d Deps) PromotionRepository {
	return &promotionRepository{
		crud: newCRUD[models.Promotion, *models.Promotion, models.PromotionPatch](d, store.KeyPromotions, "promotions", preparePromotion),
	}
}

func preparePromotion(items []models.Promotion, p *models.Promotion, _ bool) error {
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	if p.Code == "" {
		return invalid("promotion code is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return invalid("promotion name is required")
	}
	if !p.ValidUntil.IsZero() && !p.ValidFrom.IsZero() && p.ValidUntil.Before(p.ValidFrom) {
		return invalid("validUntil must not be before validFrom")
	}
	if p.MaxUsage != nil && *p.MaxUsage < 0 {
		return invalid("maxUsage must not be negative")
	}
	if p.UsageCount < 0 {
		return invalid("usageCount must not be negative")
	}
	for _, other := range items {
		if other.ID != p.ID && other.Code == p.Code {
			return fmt.Errorf("%w: promotion code %s already exists", ErrConflict, p.Code)
		}
	}
	return nil
}

func (r *promotionRepository) FindByCode(ctx context.Context, code string) (models.Promotion, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	p, ok := r.Find(ctx, func(p models.Promotion) bool { return p.Code == code })
	if !ok {
		return p, ErrNotFound
	}
	return p, nil
}

func (r *promotionRepository) SetActive(ctx context.Context, id string, active bool) (models.Promotion, error) {
	return r.Update(ctx, id, models.PromotionPatch{IsActive: models.Some(active)})
}

// RecordUsage counts one redemption. Inactive or capped promotions are refused.
func (r *promotionRepository) RecordUsage(ctx context.Context, id string) (models.Promotion, error) {
	return r.Collection.Update(ctx, id, func(_ []models.Promotion, p *models.Promotion) error {
		if !p.IsActive {
			return ErrInactive
		}
		if p.Exhausted() {
			return ErrPromotionExhausted
		}
		p.UsageCount++
		return nil
	})
}

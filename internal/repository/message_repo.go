package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/store"
)

type MessageRepository interface {
	CRUD[models.Message, models.MessagePatch]
	SetStatus(ctx context.Context, id string, status models.MessageStatus) (models.Message, error)
	Reply(ctx context.Context, id, reply string, at time.Time) (models.Message, error)
}

type messageRepository struct {
	*crud[models.Message, *models.Message, models.MessagePatch]
}

func NewMessageRepository(d Deps) MessageRepository {
	return &messageRepository{
		crud: newCRUD[models.Message, *models.Message, models.MessagePatch](d, store.KeyMessages, "messages", prepareMessage),
	}
}

func prepareMessage(_ []models.Message, m *models.Message, creating bool) error {
	if strings.TrimSpace(m.Email) == "" && strings.TrimSpace(m.Phone) == "" {
		return invalid("sender email or phone is required")
	}
	if creating {
		if m.Type == "" {
			m.Type = models.MessageInquiry
		}
		// New messages always start unread.
		m.Status = models.MessageNew
		m.Reply = ""
		m.RepliedAt = nil
	}
	if !m.Type.Valid() {
		return invalid("unknown message type %q", m.Type)
	}
	return nil
}

func (r *messageRepository) SetStatus(ctx context.Context, id string, status models.MessageStatus) (models.Message, error) {
	if !status.Valid() {
		return models.Message{}, invalid("unknown message status %q", status)
	}
	return r.Collection.Update(ctx, id, func(_ []models.Message, m *models.Message) error {
		if !m.Status.CanTransition(status) {
			return fmt.Errorf("%w: message %s to %s", ErrInvalidTransition, m.Status, status)
		}
		m.Status = status
		return nil
	})
}

func (r *messageRepository) Reply(ctx context.Context, id, reply string, at time.Time) (models.Message, error) {
	if strings.TrimSpace(reply) == "" {
		return models.Message{}, invalid("reply must not be empty")
	}
	return r.Collection.Update(ctx, id, func(_ []models.Message, m *models.Message) error {
		if !m.Status.CanTransition(models.MessageReplied) {
			return fmt.Errorf("%w: message %s to %s", ErrInvalidTransition, m.Status, models.MessageReplied)
		}
		m.Reply = reply
		m.RepliedAt = &at
		m.Status = models.MessageReplied
		return nil
	})
}

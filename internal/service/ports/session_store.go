package ports

import (
	"context"

	"github.com/Hebelub/train-booker/internal/domain"
)

// SessionStore is the session document store. Attendee mutations are
// idempotent by user id: append is a set union, remove is removal by key.
type SessionStore interface {
	List(ctx context.Context) ([]*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Create(ctx context.Context, s *domain.Session) error
	UpdateFields(ctx context.Context, id string, in domain.UpdateSessionInput) error
	Delete(ctx context.Context, id string) error
	AppendAttendee(ctx context.Context, sessionID string, attendee domain.Attendee) error
	RemoveAttendee(ctx context.Context, sessionID, userID string) error
}

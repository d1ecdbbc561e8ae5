package ports

import (
	"context"

	"github.com/Hebelub/train-booker/internal/domain"
)

// IdentityProvider looks up user profiles at the external auth provider.
// GetProfiles never fails the whole batch: entries that cannot be
// resolved are simply absent from the result.
type IdentityProvider interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	GetProfiles(ctx context.Context, userIDs []string) ([]*domain.Profile, error)
}

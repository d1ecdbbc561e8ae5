package ports

import (
	"context"

	"github.com/Hebelub/train-booker/internal/domain"
)

type SessionNotifier interface {
	NotifyBooked(ctx context.Context, user *domain.Profile, s *domain.ResolvedSession)
	NotifyUnbooked(ctx context.Context, user *domain.Profile, s *domain.ResolvedSession)
	NotifySessionCancelled(ctx context.Context, user *domain.Profile, s *domain.ResolvedSession)
	NotifySessionReminder(ctx context.Context, user *domain.Profile, s *domain.ResolvedSession)
}

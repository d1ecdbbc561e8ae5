package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Hebelub/train-booker/internal/booking"
	"github.com/Hebelub/train-booker/internal/domain"
	"github.com/Hebelub/train-booker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService is the write path for attendance. Every action seeds
// the coordinator's local view from a fresh read, applies the optimistic
// mutation, and reports the post-action view back to the caller.
type BookingService struct {
	coordinator *booking.Coordinator
	repo        ports.SessionStore
	identity    ports.IdentityProvider
	notifier    ports.SessionNotifier
	logger      logger.Logger
	now         func() time.Time

	reminderLead time.Duration
	mu           sync.Mutex
	reminded     map[string]struct{}
}

func NewBookingService(
	coordinator *booking.Coordinator,
	repo ports.SessionStore,
	identity ports.IdentityProvider,
	notifier ports.SessionNotifier,
	reminderLead time.Duration,
	log logger.Logger,
) *BookingService {
	return &BookingService{
		coordinator:  coordinator,
		repo:         repo,
		identity:     identity,
		notifier:     notifier,
		reminderLead: reminderLead,
		logger:       log,
		now:          time.Now,
		reminded:     make(map[string]struct{}),
	}
}

func (s *BookingService) Book(ctx context.Context, sessionID, userID string) (*domain.ResolvedSession, error) {
	if _, err := s.identity.GetProfile(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}

	now := s.now()
	resolved := domain.Resolve(*session, now)
	s.coordinator.Load(sessionID, resolved.ActiveAttendees)

	if err := s.coordinator.Book(ctx, sessionID, userID, now); err != nil {
		return nil, err
	}

	s.logger.Info("session booked",
		logger.String("session_id", sessionID),
		logger.String("user_id", userID),
	)

	view := s.viewOf(resolved)
	go s.notify(context.WithoutCancel(ctx), userID, view, s.notifier.NotifyBooked)

	return view, nil
}

func (s *BookingService) Unbook(ctx context.Context, sessionID, userID string) (*domain.ResolvedSession, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}

	resolved := domain.Resolve(*session, s.now())
	s.coordinator.Load(sessionID, resolved.ActiveAttendees)

	if err := s.coordinator.Unbook(ctx, sessionID, userID); err != nil {
		return nil, err
	}

	s.logger.Info("session unbooked",
		logger.String("session_id", sessionID),
		logger.String("user_id", userID),
	)

	view := s.viewOf(resolved)
	go s.notify(context.WithoutCancel(ctx), userID, view, s.notifier.NotifyUnbooked)

	return view, nil
}

// State reports the coordinator's view state for a pair, for control
// enabling and disabling.
func (s *BookingService) State(sessionID, userID string) booking.State {
	return s.coordinator.StateFor(sessionID, userID)
}

// viewOf rebuilds a resolved session from the coordinator's post-action
// local view, keeping the already-computed occurrence.
func (s *BookingService) viewOf(resolved domain.ResolvedSession) *domain.ResolvedSession {
	attendees := s.coordinator.Attendees(resolved.Session.ID)
	session := resolved.Session
	session.Attendees = attendees
	return &domain.ResolvedSession{
		Session:             session,
		OccurrenceStartTime: resolved.OccurrenceStartTime,
		ActiveAttendees:     attendees,
	}
}

func (s *BookingService) notify(
	ctx context.Context,
	userID string,
	view *domain.ResolvedSession,
	fn func(context.Context, *domain.Profile, *domain.ResolvedSession),
) {
	profile, err := s.identity.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get profile for notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}
	fn(ctx, profile, view)
}

// SendReminders notifies active attendees of sessions whose resolved
// occurrence starts within the reminder lead. Each occurrence is
// reminded once per process lifetime.
func (s *BookingService) SendReminders(ctx context.Context) (int, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list sessions: %w", err)
	}

	now := s.now()
	sent := 0
	for _, session := range sessions {
		resolved := domain.Resolve(*session, now)
		start := resolved.OccurrenceStartTime
		if !start.After(now) || start.After(now.Add(s.reminderLead)) {
			continue
		}
		if len(resolved.ActiveAttendees) == 0 {
			continue
		}

		key := session.ID + "@" + start.UTC().Format(time.RFC3339)
		s.mu.Lock()
		_, done := s.reminded[key]
		if !done {
			s.reminded[key] = struct{}{}
		}
		s.mu.Unlock()
		if done {
			continue
		}

		profiles, err := s.identity.GetProfiles(ctx, attendeeIDs(resolved.ActiveAttendees))
		if err != nil {
			s.logger.Error("failed to resolve profiles for reminder",
				logger.String("session_id", session.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		for _, p := range profiles {
			s.notifier.NotifySessionReminder(ctx, p, &resolved)
		}
		sent += len(profiles)
	}

	return sent, nil
}

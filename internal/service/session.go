package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Hebelub/train-booker/internal/booking"
	"github.com/Hebelub/train-booker/internal/domain"
	"github.com/Hebelub/train-booker/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// bookingView is the slice of the coordinator the session service needs:
// seeding and dropping local views and reading a viewer's state.
type bookingView interface {
	Load(sessionID string, attendees []domain.Attendee)
	StateFor(sessionID, userID string) booking.State
	Forget(sessionID string)
}

// SessionDetails is the detail-page payload: the resolved occurrence,
// attendee profiles split into attending and waiting, and the viewer's
// own booking state.
type SessionDetails struct {
	Resolved  domain.ResolvedSession
	Attending []*domain.Profile
	Waiting   []*domain.Profile

	ViewerState           booking.State
	ViewerBooked          bool
	ViewerWaitingPosition int
}

type SessionService struct {
	repo     ports.SessionStore
	identity ports.IdentityProvider
	notifier ports.SessionNotifier
	views    bookingView
	logger   logger.Logger
	now      func() time.Time
}

func NewSessionService(
	repo ports.SessionStore,
	identity ports.IdentityProvider,
	notifier ports.SessionNotifier,
	views bookingView,
	log logger.Logger,
) *SessionService {
	return &SessionService{
		repo:     repo,
		identity: identity,
		notifier: notifier,
		views:    views,
		logger:   log,
		now:      time.Now,
	}
}

func (s *SessionService) Create(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", domain.ErrValidation)
	}
	if input.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}
	if input.MaxAttendees < 0 {
		return nil, fmt.Errorf("%w: max_attendees must not be negative", domain.ErrValidation)
	}

	session := &domain.Session{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Description:    input.Description,
		Location:       input.Location,
		InstructorName: input.InstructorName,
		StartTime:      input.StartTime,
		Duration:       input.Duration,
		RepeatMode:     domain.ParseRepeatMode(string(input.RepeatMode)),
		MaxAttendees:   input.MaxAttendees,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session created",
		logger.String("session_id", session.ID),
		logger.String("name", session.Name),
	)

	return session, nil
}

func (s *SessionService) Update(ctx context.Context, id string, input domain.UpdateSessionInput) (*domain.Session, error) {
	if input.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if input.Name != nil && *input.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}
	if input.Duration != nil && *input.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}
	if input.MaxAttendees != nil && *input.MaxAttendees < 0 {
		return nil, fmt.Errorf("%w: max_attendees must not be negative", domain.ErrValidation)
	}

	if err := s.repo.UpdateFields(ctx, id, input); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.logger.Info("session updated", logger.String("session_id", id))

	return s.repo.GetByID(ctx, id)
}

// Delete removes the session and notifies its active attendees that the
// occurrence is cancelled. Notification failures never fail the delete.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	resolved := domain.Resolve(*session, s.now())

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.views.Forget(id)

	s.logger.Info("session deleted",
		logger.String("session_id", id),
		logger.Int("active_attendees", len(resolved.ActiveAttendees)),
	)

	if len(resolved.ActiveAttendees) > 0 {
		go s.notifyCancelled(context.WithoutCancel(ctx), resolved)
	}

	return nil
}

func (s *SessionService) notifyCancelled(ctx context.Context, resolved domain.ResolvedSession) {
	profiles, err := s.identity.GetProfiles(ctx, attendeeIDs(resolved.ActiveAttendees))
	if err != nil {
		s.logger.Error("failed to resolve profiles for cancellation notice",
			logger.String("session_id", resolved.Session.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	for _, p := range profiles {
		s.notifier.NotifySessionCancelled(ctx, p, &resolved)
	}
}

// List returns every session resolved against the current instant.
func (s *SessionService) List(ctx context.Context) ([]domain.ResolvedSession, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	now := s.now()
	res := make([]domain.ResolvedSession, 0, len(sessions))
	for _, session := range sessions {
		res = append(res, domain.Resolve(*session, now))
	}

	return res, nil
}

// GetDetails resolves the session, seeds the local booking view, and
// renders the attendee lists as profiles. viewerID may be empty for an
// unauthenticated read.
func (s *SessionService) GetDetails(ctx context.Context, id, viewerID string) (*SessionDetails, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved := domain.Resolve(*session, s.now())
	s.views.Load(id, resolved.ActiveAttendees)

	attending, err := s.identity.GetProfiles(ctx, attendeeIDs(resolved.Attending()))
	if err != nil {
		return nil, fmt.Errorf("resolve attending profiles: %w", err)
	}
	waiting, err := s.identity.GetProfiles(ctx, attendeeIDs(resolved.Waiting()))
	if err != nil {
		return nil, fmt.Errorf("resolve waiting profiles: %w", err)
	}

	details := &SessionDetails{
		Resolved:  resolved,
		Attending: attending,
		Waiting:   waiting,
	}
	if viewerID != "" {
		details.ViewerState = s.views.StateFor(id, viewerID)
		details.ViewerBooked = resolved.IsBooked(viewerID)
		details.ViewerWaitingPosition = resolved.WaitingPosition(viewerID)
	}

	return details, nil
}

// AttendeeProfiles returns profiles for the occurrence-scoped attendee
// list, in booking order. Unresolvable entries are omitted.
func (s *SessionService) AttendeeProfiles(ctx context.Context, id string) ([]*domain.Profile, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved := domain.Resolve(*session, s.now())
	return s.identity.GetProfiles(ctx, attendeeIDs(resolved.ActiveAttendees))
}

func attendeeIDs(attendees []domain.Attendee) []string {
	ids := make([]string, 0, len(attendees))
	for _, a := range attendees {
		ids = append(ids, a.UserID)
	}
	return ids
}

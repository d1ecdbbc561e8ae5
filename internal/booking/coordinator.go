package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Hebelub/train-booker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// State is the booking state of one (session, user) pair as seen by the
// local view.
type State string

const (
	StateNotBooked     State = "not_booked"
	StateBooked        State = "booked"
	StatePendingBook   State = "pending_book"
	StatePendingUnbook State = "pending_unbook"
)

// RemoteStore is the slice of the session store the coordinator mutates.
// Both operations are at-least-once and idempotent by user id.
type RemoteStore interface {
	AppendAttendee(ctx context.Context, sessionID string, attendee domain.Attendee) error
	RemoveAttendee(ctx context.Context, sessionID, userID string) error
}

type pairKey struct {
	sessionID string
	userID    string
}

// Coordinator applies booking actions optimistically: the local attendee
// view changes first, the remote mutation follows under a deadline, and
// a failed or timed-out mutation restores the pre-action snapshot.
//
// Exactly one mutation per (session, user) pair may be in flight;
// a second action while one is pending fails with ErrActionInFlight.
type Coordinator struct {
	store   RemoteStore
	timeout time.Duration
	log     logger.Logger

	mu      sync.Mutex
	views   map[string][]domain.Attendee
	pending map[pairKey]State
}

func NewCoordinator(store RemoteStore, timeout time.Duration, log logger.Logger) *Coordinator {
	return &Coordinator{
		store:   store,
		timeout: timeout,
		log:     log,
		views:   make(map[string][]domain.Attendee),
		pending: make(map[pairKey]State),
	}
}

// Load seeds the local view for a session from a fresh read. Called on
// every fetch so the view never drifts further than one read cycle.
func (c *Coordinator) Load(sessionID string, attendees []domain.Attendee) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views[sessionID] = append([]domain.Attendee(nil), attendees...)
}

// Attendees returns the current local view for a session.
func (c *Coordinator) Attendees(sessionID string) []domain.Attendee {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Attendee(nil), c.views[sessionID]...)
}

// StateFor reports the view state of a (session, user) pair.
func (c *Coordinator) StateFor(sessionID, userID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.pending[pairKey{sessionID, userID}]; ok {
		return st
	}
	if c.booked(sessionID, userID) {
		return StateBooked
	}
	return StateNotBooked
}

// Book appends the user to the local view, then issues the remote append.
// The synthesized attendee carries bookedAt = now. On failure the view is
// restored to its pre-action snapshot.
func (c *Coordinator) Book(ctx context.Context, sessionID, userID string, now time.Time) error {
	key := pairKey{sessionID, userID}

	c.mu.Lock()
	if _, ok := c.pending[key]; ok {
		c.mu.Unlock()
		return domain.ErrActionInFlight
	}
	if c.booked(sessionID, userID) {
		c.mu.Unlock()
		return domain.ErrAlreadyBooked
	}
	snapshot := append([]domain.Attendee(nil), c.views[sessionID]...)
	c.views[sessionID] = append(c.views[sessionID], domain.Attendee{UserID: userID, BookedAt: now})
	c.pending[key] = StatePendingBook
	c.mu.Unlock()

	mctx, cancel := context.WithTimeout(ctx, c.timeout)
	err := c.store.AppendAttendee(mctx, sessionID, domain.Attendee{UserID: userID, BookedAt: now})
	cancel()

	c.mu.Lock()
	delete(c.pending, key)
	if err != nil {
		c.views[sessionID] = snapshot
		c.mu.Unlock()
		c.log.Error("book reverted",
			logger.String("session_id", sessionID),
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("append attendee: %w", err)
	}
	c.mu.Unlock()

	return nil
}

// Unbook removes the user from the local view, then issues the remote
// removal. On failure the snapshot is restored and the user stays booked.
func (c *Coordinator) Unbook(ctx context.Context, sessionID, userID string) error {
	key := pairKey{sessionID, userID}

	c.mu.Lock()
	if _, ok := c.pending[key]; ok {
		c.mu.Unlock()
		return domain.ErrActionInFlight
	}
	if !c.booked(sessionID, userID) {
		c.mu.Unlock()
		return domain.ErrNotBooked
	}
	snapshot := append([]domain.Attendee(nil), c.views[sessionID]...)
	c.views[sessionID] = removeByUser(c.views[sessionID], userID)
	c.pending[key] = StatePendingUnbook
	c.mu.Unlock()

	mctx, cancel := context.WithTimeout(ctx, c.timeout)
	err := c.store.RemoveAttendee(mctx, sessionID, userID)
	cancel()

	c.mu.Lock()
	delete(c.pending, key)
	if err != nil {
		c.views[sessionID] = snapshot
		c.mu.Unlock()
		c.log.Error("unbook reverted",
			logger.String("session_id", sessionID),
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("remove attendee: %w", err)
	}
	c.mu.Unlock()

	return nil
}

// Forget drops the local view for a session, e.g. after it is deleted.
func (c *Coordinator) Forget(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, sessionID)
}

// booked assumes c.mu is held.
func (c *Coordinator) booked(sessionID, userID string) bool {
	for _, a := range c.views[sessionID] {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

func removeByUser(attendees []domain.Attendee, userID string) []domain.Attendee {
	out := make([]domain.Attendee, 0, len(attendees))
	for _, a := range attendees {
		if a.UserID != userID {
			out = append(out, a)
		}
	}
	return out
}

package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Hebelub/train-booker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeStore struct {
	appendErr error
	removeErr error
	appends   int
	removes   int

	// when set, mutations block until released
	gate chan struct{}
}

func (f *fakeStore) AppendAttendee(ctx context.Context, sessionID string, a domain.Attendee) error {
	f.appends++
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.appendErr
}

func (f *fakeStore) RemoveAttendee(ctx context.Context, sessionID, userID string) error {
	f.removes++
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.removeErr
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestCoordinator(t *testing.T, store RemoteStore) *Coordinator {
	t.Helper()
	return NewCoordinator(store, time.Second, newTestLogger(t))
}

var bookedAt = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func TestCoordinator_Book_Success(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(t, store)
	c.Load("s1", nil)

	err := c.Book(context.Background(), "s1", "u1", bookedAt)

	require.NoError(t, err)
	assert.Equal(t, StateBooked, c.StateFor("s1", "u1"))
	attendees := c.Attendees("s1")
	require.Len(t, attendees, 1)
	assert.Equal(t, "u1", attendees[0].UserID)
	assert.Equal(t, bookedAt, attendees[0].BookedAt)
	assert.Equal(t, 1, store.appends)
}

func TestCoordinator_Book_RemoteFailureReverts(t *testing.T) {
	store := &fakeStore{appendErr: errors.New("store down")}
	c := newTestCoordinator(t, store)
	before := []domain.Attendee{{UserID: "other", BookedAt: bookedAt.Add(-time.Hour)}}
	c.Load("s1", before)

	err := c.Book(context.Background(), "s1", "u1", bookedAt)

	require.Error(t, err)
	assert.Equal(t, StateNotBooked, c.StateFor("s1", "u1"))
	assert.Equal(t, before, c.Attendees("s1"), "view must equal the pre-call snapshot")
}

func TestCoordinator_Book_AlreadyBooked(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(t, store)
	c.Load("s1", []domain.Attendee{{UserID: "u1", BookedAt: bookedAt}})

	err := c.Book(context.Background(), "s1", "u1", bookedAt)

	require.ErrorIs(t, err, domain.ErrAlreadyBooked)
	assert.Equal(t, 0, store.appends)
}

func TestCoordinator_Unbook_Success(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(t, store)
	c.Load("s1", []domain.Attendee{
		{UserID: "u1", BookedAt: bookedAt},
		{UserID: "u2", BookedAt: bookedAt.Add(time.Minute)},
	})

	err := c.Unbook(context.Background(), "s1", "u1")

	require.NoError(t, err)
	assert.Equal(t, StateNotBooked, c.StateFor("s1", "u1"))
	attendees := c.Attendees("s1")
	require.Len(t, attendees, 1)
	assert.Equal(t, "u2", attendees[0].UserID)
	assert.Equal(t, 1, store.removes)
}

func TestCoordinator_Unbook_RemoteFailureReverts(t *testing.T) {
	store := &fakeStore{removeErr: errors.New("store down")}
	c := newTestCoordinator(t, store)
	before := []domain.Attendee{{UserID: "u1", BookedAt: bookedAt}}
	c.Load("s1", before)

	err := c.Unbook(context.Background(), "s1", "u1")

	require.Error(t, err)
	assert.Equal(t, StateBooked, c.StateFor("s1", "u1"))
	assert.Equal(t, before, c.Attendees("s1"))
}

func TestCoordinator_Unbook_NotBooked(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(t, store)
	c.Load("s1", nil)

	err := c.Unbook(context.Background(), "s1", "u1")

	require.ErrorIs(t, err, domain.ErrNotBooked)
	assert.Equal(t, 0, store.removes)
}

func TestCoordinator_BookUnbook_RoundTrip(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(t, store)
	before := []domain.Attendee{{UserID: "other", BookedAt: bookedAt.Add(-time.Hour)}}
	c.Load("s1", before)

	require.NoError(t, c.Book(context.Background(), "s1", "u1", bookedAt))
	require.NoError(t, c.Unbook(context.Background(), "s1", "u1"))

	assert.Equal(t, before, c.Attendees("s1"))
	assert.Equal(t, StateNotBooked, c.StateFor("s1", "u1"))
}

func TestCoordinator_SecondActionWhilePending(t *testing.T) {
	store := &fakeStore{gate: make(chan struct{})}
	c := newTestCoordinator(t, store)
	c.Load("s1", nil)

	done := make(chan error, 1)
	go func() {
		done <- c.Book(context.Background(), "s1", "u1", bookedAt)
	}()

	// wait for the first action to reach the pending state
	require.Eventually(t, func() bool {
		return c.StateFor("s1", "u1") == StatePendingBook
	}, time.Second, time.Millisecond)

	err := c.Unbook(context.Background(), "s1", "u1")
	assert.ErrorIs(t, err, domain.ErrActionInFlight)

	close(store.gate)
	require.NoError(t, <-done)
	assert.Equal(t, StateBooked, c.StateFor("s1", "u1"))
}

func TestCoordinator_Book_TimeoutReverts(t *testing.T) {
	store := &fakeStore{gate: make(chan struct{})} // never released
	c := NewCoordinator(store, 20*time.Millisecond, newTestLogger(t))
	c.Load("s1", nil)

	err := c.Book(context.Background(), "s1", "u1", bookedAt)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StateNotBooked, c.StateFor("s1", "u1"))
	assert.Empty(t, c.Attendees("s1"))
}

func TestCoordinator_LoadReplacesView(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(t, store)
	c.Load("s1", []domain.Attendee{{UserID: "u1", BookedAt: bookedAt}})
	c.Load("s1", []domain.Attendee{{UserID: "u2", BookedAt: bookedAt}})

	attendees := c.Attendees("s1")
	require.Len(t, attendees, 1)
	assert.Equal(t, "u2", attendees[0].UserID)

	c.Forget("s1")
	assert.Empty(t, c.Attendees("s1"))
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 2025-01-15 10:30 UTC is a fixed reference instant used all over
// these tests so that weekday arithmetic stays readable.
var testNow = time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)

func TestResolve_FutureOneOff_Unchanged(t *testing.T) {
	start := testNow.Add(48 * time.Hour)
	s := Session{
		ID:         "s1",
		StartTime:  start,
		RepeatMode: RepeatNone,
		Attendees: []Attendee{
			{UserID: "u1", BookedAt: testNow.Add(-30 * 24 * time.Hour)},
			{UserID: "u2", BookedAt: testNow.Add(-time.Hour)},
		},
	}

	r := Resolve(s, testNow)

	assert.Equal(t, start, r.OccurrenceStartTime)
	assert.Equal(t, s.Attendees, r.ActiveAttendees)
}

func TestResolve_SameDay_Unchanged(t *testing.T) {
	// Stored earlier today, date-truncated comparison keeps it as-is even
	// though the instant itself has passed.
	start := time.Date(2025, time.January, 15, 7, 0, 0, 0, time.UTC)
	s := Session{
		StartTime:  start,
		RepeatMode: RepeatWeekly,
		Attendees:  []Attendee{{UserID: "u1", BookedAt: testNow.Add(-30 * 24 * time.Hour)}},
	}

	r := Resolve(s, testNow)

	assert.Equal(t, start, r.OccurrenceStartTime)
	assert.Len(t, r.ActiveAttendees, 1, "same-day sessions are not filtered")
}

func TestResolve_PastOneOff_Unchanged(t *testing.T) {
	start := testNow.Add(-72 * time.Hour)
	s := Session{
		StartTime:  start,
		RepeatMode: RepeatNone,
		Attendees:  []Attendee{{UserID: "u1", BookedAt: start.Add(-time.Hour)}},
	}

	r := Resolve(s, testNow)

	assert.Equal(t, start, r.OccurrenceStartTime)
	assert.Len(t, r.ActiveAttendees, 1)
}

func TestResolve_WeeklyPast_RollsForward(t *testing.T) {
	// Monday 18:00, three weeks back. Next Monday from Wednesday testNow
	// is 2025-01-20.
	start := time.Date(2024, time.December, 23, 18, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, start.Weekday())

	s := Session{StartTime: start, RepeatMode: RepeatWeekly}

	r := Resolve(s, testNow)

	want := time.Date(2025, time.January, 20, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, want, r.OccurrenceStartTime)
	assert.Equal(t, start.Weekday(), r.OccurrenceStartTime.Weekday())
}

func TestResolve_WeeklyPast_OccurrenceWithinSixDays(t *testing.T) {
	for wd := 0; wd < 7; wd++ {
		start := time.Date(2024, time.June, 2+wd, 9, 15, 0, 0, time.UTC)
		s := Session{StartTime: start, RepeatMode: RepeatWeekly}

		r := Resolve(s, testNow)

		assert.Equal(t, start.Weekday(), r.OccurrenceStartTime.Weekday())
		assert.False(t, r.OccurrenceStartTime.Before(dateOnly(testNow)))
		assert.False(t, r.OccurrenceStartTime.After(dateOnly(testNow).AddDate(0, 0, 6).Add(24*time.Hour)))
		assert.Equal(t, 9, r.OccurrenceStartTime.Hour())
		assert.Equal(t, 15, r.OccurrenceStartTime.Minute())
	}
}

func TestResolve_WeeklyPast_FiltersStaleBookings(t *testing.T) {
	start := time.Date(2024, time.December, 23, 18, 0, 0, 0, time.UTC) // Monday
	occurrence := time.Date(2025, time.January, 20, 18, 0, 0, 0, time.UTC)

	s := Session{
		StartTime:  start,
		RepeatMode: RepeatWeekly,
		Attendees: []Attendee{
			{UserID: "stale", BookedAt: occurrence.Add(-8 * 24 * time.Hour)},
			{UserID: "boundary", BookedAt: occurrence.Add(-7 * 24 * time.Hour)},
			{UserID: "fresh", BookedAt: occurrence.Add(-6 * 24 * time.Hour)},
		},
	}

	r := Resolve(s, testNow)

	require.Len(t, r.ActiveAttendees, 1)
	assert.Equal(t, "fresh", r.ActiveAttendees[0].UserID)
	assert.False(t, r.IsBooked("stale"), "8 days before the occurrence is a past week")
	assert.False(t, r.IsBooked("boundary"), "exactly one cycle before is excluded")
}

func TestResolve_UnknownRepeatMode_TreatedAsNone(t *testing.T) {
	start := testNow.Add(-10 * 24 * time.Hour)
	s := Session{
		StartTime:  start,
		RepeatMode: ParseRepeatMode("fortnightly"),
		Attendees:  []Attendee{{UserID: "u1", BookedAt: start}},
	}

	r := Resolve(s, testNow)

	assert.Equal(t, start, r.OccurrenceStartTime)
	assert.Len(t, r.ActiveAttendees, 1)
}

func TestResolve_Pure(t *testing.T) {
	s := Session{
		StartTime:  time.Date(2024, time.December, 23, 18, 0, 0, 0, time.UTC),
		RepeatMode: RepeatWeekly,
		Attendees: []Attendee{
			{UserID: "u1", BookedAt: testNow.Add(-time.Hour)},
			{UserID: "u2", BookedAt: testNow.Add(-30 * 24 * time.Hour)},
		},
	}

	first := Resolve(s, testNow)
	second := Resolve(s, testNow)

	assert.Equal(t, first, second)
}

func TestResolvedSession_AttendanceSplit(t *testing.T) {
	s := Session{
		StartTime:    testNow.Add(24 * time.Hour),
		MaxAttendees: 2,
		Attendees: []Attendee{
			{UserID: "A", BookedAt: testNow.Add(-3 * time.Hour)},
			{UserID: "B", BookedAt: testNow.Add(-2 * time.Hour)},
			{UserID: "C", BookedAt: testNow.Add(-time.Hour)},
		},
	}

	r := Resolve(s, testNow)

	attending := r.Attending()
	require.Len(t, attending, 2)
	assert.Equal(t, "A", attending[0].UserID)
	assert.Equal(t, "B", attending[1].UserID)

	waiting := r.Waiting()
	require.Len(t, waiting, 1)
	assert.Equal(t, "C", waiting[0].UserID)

	assert.Equal(t, 0, r.WaitingPosition("A"))
	assert.Equal(t, 1, r.WaitingPosition("C"))
	assert.Equal(t, 0, r.WaitingPosition("missing"))
}

func TestResolvedSession_WaitingListDrainsAfterUnbook(t *testing.T) {
	s := Session{
		StartTime:    testNow.Add(24 * time.Hour),
		MaxAttendees: 2,
		Attendees: []Attendee{
			{UserID: "A", BookedAt: testNow.Add(-3 * time.Hour)},
			{UserID: "B", BookedAt: testNow.Add(-2 * time.Hour)},
		},
	}

	r := Resolve(s, testNow)

	assert.Empty(t, r.Waiting())
	attending := r.Attending()
	require.Len(t, attending, 2)
	assert.Equal(t, "A", attending[0].UserID)
	assert.Equal(t, "B", attending[1].UserID)
}

func TestResolvedSession_Status(t *testing.T) {
	s := Session{
		StartTime: testNow.Add(-30 * time.Minute),
		Duration:  time.Hour,
	}
	r := Resolve(s, testNow)

	assert.Equal(t, StatusOngoing, r.Status(testNow))
	assert.Equal(t, StatusUpcoming, r.Status(testNow.Add(-time.Hour)))
	assert.Equal(t, StatusPassed, r.Status(testNow.Add(2*time.Hour)))
}

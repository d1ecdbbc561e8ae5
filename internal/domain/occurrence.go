package domain

import "time"

// recurrenceWindow is one full weekly cycle. Bookings older than this,
// measured against the resolved occurrence, belong to a previous week.
const recurrenceWindow = 7 * 24 * time.Hour

type OccurrenceStatus string

const (
	StatusUpcoming OccurrenceStatus = "upcoming"
	StatusOngoing  OccurrenceStatus = "ongoing"
	StatusPassed   OccurrenceStatus = "passed"
)

// ResolvedSession is the read-time projection of a session: the next
// actual occurrence and the attendees that belong to it. It is never
// persisted, only recomputed per read.
type ResolvedSession struct {
	Session             Session
	OccurrenceStartTime time.Time
	ActiveAttendees     []Attendee
}

// Resolve projects a stored session onto its next occurrence as of now.
//
// A session whose stored date (truncated to midnight in its own time
// zone) is today or in the future keeps its stored start time and all
// its attendees. A weekly session with a past date rolls forward to the
// next matching weekday, keeping the stored time of day, and drops
// attendees whose booking predates the current weekly cycle. A one-off
// session with a past date is simply over; nothing is filtered.
//
// Resolve is pure: no clock reads, no I/O, no error paths.
func Resolve(s Session, now time.Time) ResolvedSession {
	now = now.In(s.StartTime.Location())

	if !dateOnly(s.StartTime).Before(dateOnly(now)) {
		return ResolvedSession{
			Session:             s,
			OccurrenceStartTime: s.StartTime,
			ActiveAttendees:     s.Attendees,
		}
	}

	if s.RepeatMode != RepeatWeekly {
		return ResolvedSession{
			Session:             s,
			OccurrenceStartTime: s.StartTime,
			ActiveAttendees:     s.Attendees,
		}
	}

	dayDiff := (int(s.StartTime.Weekday()) - int(now.Weekday()) + 7) % 7
	day := dateOnly(now).AddDate(0, 0, dayDiff)
	occurrence := time.Date(
		day.Year(), day.Month(), day.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), s.StartTime.Second(), s.StartTime.Nanosecond(),
		s.StartTime.Location(),
	)

	cutoff := occurrence.Add(-recurrenceWindow)
	var active []Attendee
	for _, a := range s.Attendees {
		if a.BookedAt.After(cutoff) {
			active = append(active, a)
		}
	}

	return ResolvedSession{
		Session:             s,
		OccurrenceStartTime: occurrence,
		ActiveAttendees:     active,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Attending returns the active attendees that hold a spot: the first
// MaxAttendees bookings in store order.
func (r ResolvedSession) Attending() []Attendee {
	if len(r.ActiveAttendees) <= r.Session.MaxAttendees {
		return r.ActiveAttendees
	}
	return r.ActiveAttendees[:r.Session.MaxAttendees]
}

// Waiting returns the active attendees past capacity, in booking order.
func (r ResolvedSession) Waiting() []Attendee {
	if len(r.ActiveAttendees) <= r.Session.MaxAttendees {
		return nil
	}
	return r.ActiveAttendees[r.Session.MaxAttendees:]
}

// IsBooked reports whether userID is among the active attendees.
func (r ResolvedSession) IsBooked(userID string) bool {
	for _, a := range r.ActiveAttendees {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// WaitingPosition returns the 1-based waiting-list position of userID,
// or 0 when the user holds a spot or is not booked at all.
func (r ResolvedSession) WaitingPosition(userID string) int {
	for i, a := range r.ActiveAttendees {
		if a.UserID == userID {
			pos := i - r.Session.MaxAttendees + 1
			if pos > 0 {
				return pos
			}
			return 0
		}
	}
	return 0
}

// Status classifies the resolved occurrence for display.
func (r ResolvedSession) Status(now time.Time) OccurrenceStatus {
	start := r.OccurrenceStartTime
	end := start.Add(r.Session.Duration)
	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.After(end):
		return StatusPassed
	default:
		return StatusOngoing
	}
}

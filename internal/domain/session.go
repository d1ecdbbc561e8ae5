package domain

import "time"

type RepeatMode string

const (
	RepeatNone   RepeatMode = "none"
	RepeatWeekly RepeatMode = "weekly"
)

// ParseRepeatMode maps a stored value onto the closed set of modes.
// Anything unrecognised reads as RepeatNone.
func ParseRepeatMode(s string) RepeatMode {
	if RepeatMode(s) == RepeatWeekly {
		return RepeatWeekly
	}
	return RepeatNone
}

type Session struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Location       string        `json:"location"`
	InstructorName string        `json:"instructor_name"`
	StartTime      time.Time     `json:"start_time"`
	Duration       time.Duration `json:"duration"`
	RepeatMode     RepeatMode    `json:"repeat_mode"`
	MaxAttendees   int           `json:"max_attendees"`
	Attendees      []Attendee    `json:"attendees"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Attendee is one booking on a session. Order in Session.Attendees is
// booking order as assigned by the store.
type Attendee struct {
	UserID   string    `json:"user_id"`
	BookedAt time.Time `json:"booked_at"`
}

// HasAttendee reports whether userID holds a booking on the session.
func (s *Session) HasAttendee(userID string) bool {
	for _, a := range s.Attendees {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

type CreateSessionInput struct {
	Name           string
	Description    string
	Location       string
	InstructorName string
	StartTime      time.Time
	Duration       time.Duration
	RepeatMode     RepeatMode
	MaxAttendees   int
}

// UpdateSessionInput carries a partial update; nil fields are left untouched.
type UpdateSessionInput struct {
	Name           *string
	Description    *string
	Location       *string
	InstructorName *string
	StartTime      *time.Time
	Duration       *time.Duration
	RepeatMode     *RepeatMode
	MaxAttendees   *int
}

func (in UpdateSessionInput) Empty() bool {
	return in.Name == nil && in.Description == nil && in.Location == nil &&
		in.InstructorName == nil && in.StartTime == nil && in.Duration == nil &&
		in.RepeatMode == nil && in.MaxAttendees == nil
}

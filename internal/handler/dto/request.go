package dto

type CreateSessionRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	InstructorName  string `json:"instructor_name"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"gte=0"`
	RepeatMode      string `json:"repeat_mode" binding:"omitempty,oneof=none weekly"`
	MaxAttendees    int    `json:"max_attendees" binding:"gte=0"`
}

// UpdateSessionRequest is a partial update; absent fields are untouched.
type UpdateSessionRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Location        *string `json:"location"`
	InstructorName  *string `json:"instructor_name"`
	StartTime       *string `json:"start_time"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,gte=0"`
	RepeatMode      *string `json:"repeat_mode" binding:"omitempty,oneof=none weekly"`
	MaxAttendees    *int    `json:"max_attendees" binding:"omitempty,gte=0"`
}

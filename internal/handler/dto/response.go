package dto

import (
	"time"

	"github.com/Hebelub/train-booker/internal/domain"
	"github.com/Hebelub/train-booker/internal/service"
)

type SessionResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	InstructorName  string `json:"instructor_name"`
	StartTime       string `json:"start_time"`
	OccurrenceStart string `json:"occurrence_start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	RepeatMode      string `json:"repeat_mode"`
	MaxAttendees    int    `json:"max_attendees"`
	AttendingCount  int    `json:"attending_count"`
	WaitingCount    int    `json:"waiting_count"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type AttendeeProfileResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type SessionDetailsResponse struct {
	Session         SessionResponse           `json:"session"`
	Attending       []AttendeeProfileResponse `json:"attending"`
	Waiting         []AttendeeProfileResponse `json:"waiting"`
	BookingState    string                    `json:"booking_state,omitempty"`
	IsBooked        bool                      `json:"is_booked"`
	WaitingPosition int                       `json:"waiting_position,omitempty"`
}

type BookingResultResponse struct {
	SessionID       string `json:"session_id"`
	OccurrenceStart string `json:"occurrence_start_time"`
	AttendingCount  int    `json:"attending_count"`
	WaitingCount    int    `json:"waiting_count"`
	WaitingPosition int    `json:"waiting_position,omitempty"`
}

type BookingStateResponse struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	State     string `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSessionResponse(r domain.ResolvedSession, now time.Time) SessionResponse {
	return SessionResponse{
		ID:              r.Session.ID,
		Name:            r.Session.Name,
		Description:     r.Session.Description,
		Location:        r.Session.Location,
		InstructorName:  r.Session.InstructorName,
		StartTime:       r.Session.StartTime.Format(time.RFC3339),
		OccurrenceStart: r.OccurrenceStartTime.Format(time.RFC3339),
		DurationMinutes: int(r.Session.Duration.Minutes()),
		RepeatMode:      string(r.Session.RepeatMode),
		MaxAttendees:    r.Session.MaxAttendees,
		AttendingCount:  len(r.Attending()),
		WaitingCount:    len(r.Waiting()),
		Status:          string(r.Status(now)),
		CreatedAt:       r.Session.CreatedAt.Format(time.RFC3339),
	}
}

func ToSessionDetailsResponse(d *service.SessionDetails, now time.Time) SessionDetailsResponse {
	return SessionDetailsResponse{
		Session:         ToSessionResponse(d.Resolved, now),
		Attending:       toProfileResponses(d.Attending),
		Waiting:         toProfileResponses(d.Waiting),
		BookingState:    string(d.ViewerState),
		IsBooked:        d.ViewerBooked,
		WaitingPosition: d.ViewerWaitingPosition,
	}
}

func ToBookingResultResponse(r *domain.ResolvedSession, userID string) BookingResultResponse {
	return BookingResultResponse{
		SessionID:       r.Session.ID,
		OccurrenceStart: r.OccurrenceStartTime.Format(time.RFC3339),
		AttendingCount:  len(r.Attending()),
		WaitingCount:    len(r.Waiting()),
		WaitingPosition: r.WaitingPosition(userID),
	}
}

func toProfileResponses(profiles []*domain.Profile) []AttendeeProfileResponse {
	res := make([]AttendeeProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, AttendeeProfileResponse{
			UserID:      p.ID,
			DisplayName: p.DisplayName(),
		})
	}
	return res
}

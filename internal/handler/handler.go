package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Hebelub/train-booker/internal/booking"
	"github.com/Hebelub/train-booker/internal/domain"
	"github.com/Hebelub/train-booker/internal/handler/dto"
	"github.com/Hebelub/train-booker/internal/middleware"
	"github.com/Hebelub/train-booker/internal/service"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type SessionSvc interface {
	Create(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error)
	Update(ctx context.Context, id string, input domain.UpdateSessionInput) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.ResolvedSession, error)
	GetDetails(ctx context.Context, id, viewerID string) (*service.SessionDetails, error)
	AttendeeProfiles(ctx context.Context, id string) ([]*domain.Profile, error)
}

type BookingSvc interface {
	Book(ctx context.Context, sessionID, userID string) (*domain.ResolvedSession, error)
	Unbook(ctx context.Context, sessionID, userID string) (*domain.ResolvedSession, error)
	State(sessionID, userID string) booking.State
}

type Handler struct {
	sessionService SessionSvc
	bookingService BookingSvc
}

func NewHandler(sessionService SessionSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		sessionService: sessionService,
		bookingService: bookingService,
	}
}

// Sessions

func (h *Handler) ListSessions(c *ginext.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	now := time.Now()
	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s, now))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	viewerID := c.GetString(middleware.ContextUserID)

	details, err := h.sessionService.GetDetails(c.Request.Context(), id, viewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionDetailsResponse(details, time.Now()))
}

func (h *Handler) GetSessionAttendees(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	profiles, err := h.sessionService.AttendeeProfiles(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendeeProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		resp = append(resp, dto.AttendeeProfileResponse{UserID: p.ID, DisplayName: p.DisplayName()})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateSession(c *ginext.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateSessionInput{
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		InstructorName: req.InstructorName,
		StartTime:      startTime,
		Duration:       time.Duration(req.DurationMinutes) * time.Minute,
		RepeatMode:     domain.ParseRepeatMode(req.RepeatMode),
		MaxAttendees:   req.MaxAttendees,
	}

	session, err := h.sessionService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(domain.Resolve(*session, time.Now()), time.Now()))
}

func (h *Handler) UpdateSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateSessionInput{
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		InstructorName: req.InstructorName,
	}
	if req.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid start_time format, expected RFC3339",
			})
			return
		}
		input.StartTime = &startTime
	}
	if req.DurationMinutes != nil {
		d := time.Duration(*req.DurationMinutes) * time.Minute
		input.Duration = &d
	}
	if req.RepeatMode != nil {
		mode := domain.ParseRepeatMode(*req.RepeatMode)
		input.RepeatMode = &mode
	}
	input.MaxAttendees = req.MaxAttendees

	session, err := h.sessionService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(domain.Resolve(*session, time.Now()), time.Now()))
}

func (h *Handler) DeleteSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Bookings

func (h *Handler) BookSession(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}
	userID := c.GetString(middleware.ContextUserID)

	view, err := h.bookingService.Book(c.Request.Context(), sessionID, userID)
	middleware.RecordBookingAction("book", err)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResultResponse(view, userID))
}

func (h *Handler) UnbookSession(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}
	userID := c.GetString(middleware.ContextUserID)

	view, err := h.bookingService.Unbook(c.Request.Context(), sessionID, userID)
	middleware.RecordBookingAction("unbook", err)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResultResponse(view, userID))
}

// GetBookingState reports the caller's coordinator state for a session,
// used by clients to disable the booking control while a mutation is in
// flight.
func (h *Handler) GetBookingState(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}
	userID := c.GetString(middleware.ContextUserID)

	c.JSON(http.StatusOK, dto.BookingStateResponse{
		SessionID: sessionID,
		UserID:    userID,
		State:     string(h.bookingService.State(sessionID, userID)),
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrNotBooked),
		errors.Is(err, domain.ErrActionInFlight):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

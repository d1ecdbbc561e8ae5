package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hebelub/train-booker/internal/booking"
	"github.com/Hebelub/train-booker/internal/domain"
	"github.com/Hebelub/train-booker/internal/handler/dto"
	hmocks "github.com/Hebelub/train-booker/internal/handler/mocks"
	"github.com/Hebelub/train-booker/internal/middleware"
	"github.com/Hebelub/train-booker/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testUserID = "11111111-1111-1111-1111-111111111111"

func asUser(userID string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func setupRouter(t *testing.T) (*hmocks.MockSessionSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	sessionSvc := hmocks.NewMockSessionSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(sessionSvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/sessions", h.ListSessions)
		api.GET("/sessions/:id", asUser(testUserID), h.GetSession)
		api.GET("/sessions/:id/attendees", h.GetSessionAttendees)
		api.POST("/sessions", h.CreateSession)
		api.PATCH("/sessions/:id", h.UpdateSession)
		api.DELETE("/sessions/:id", h.DeleteSession)
		api.POST("/sessions/:id/book", asUser(testUserID), h.BookSession)
		api.POST("/sessions/:id/unbook", asUser(testUserID), h.UnbookSession)
		api.GET("/sessions/:id/booking-state", asUser(testUserID), h.GetBookingState)
	}

	return sessionSvc, bookingSvc, r
}

func futureResolved(id string) domain.ResolvedSession {
	start := time.Now().Add(24 * time.Hour)
	return domain.Resolve(domain.Session{
		ID:           id,
		Name:         "Morning Yoga",
		StartTime:    start,
		Duration:     time.Hour,
		RepeatMode:   domain.RepeatNone,
		MaxAttendees: 10,
		CreatedAt:    time.Now(),
	}, time.Now())
}

// --- Sessions ---

func TestHandler_ListSessions_Success(t *testing.T) {
	sessionSvc, _, r := setupRouter(t)

	sessions := []domain.ResolvedSession{
		futureResolved("s1"),
		futureResolved("s2"),
	}
	sessionSvc.EXPECT().List(mock.Anything).Return(sessions, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "Morning Yoga", resp[0].Name)
	assert.Equal(t, "upcoming", resp[0].Status)
}

func TestHandler_GetSession_Success(t *testing.T) {
	sessionSvc, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	details := &service.SessionDetails{
		Resolved:     futureResolved(sessionID),
		Attending:    []*domain.Profile{{ID: testUserID, Username: "alice"}},
		Waiting:      []*domain.Profile{},
		ViewerState:  booking.StateBooked,
		ViewerBooked: true,
	}

	sessionSvc.EXPECT().GetDetails(mock.Anything, sessionID, testUserID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsBooked)
	assert.Equal(t, string(booking.StateBooked), resp.BookingState)
	require.Len(t, resp.Attending, 1)
	assert.Equal(t, "alice", resp.Attending[0].DisplayName)
}

func TestHandler_GetSession_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSession_NotFound(t *testing.T) {
	sessionSvc, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	sessionSvc.EXPECT().GetDetails(mock.Anything, sessionID, testUserID).Return(nil, domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetSessionAttendees_Success(t *testing.T) {
	sessionSvc, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	profiles := []*domain.Profile{
		{ID: "u1", Username: "alice"},
		{ID: "u2", FirstName: "Bob", LastName: "Stone"},
	}
	sessionSvc.EXPECT().AttendeeProfiles(mock.Anything, sessionID).Return(profiles, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID+"/attendees", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AttendeeProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "alice", resp[0].DisplayName)
	assert.Equal(t, "Bob Stone", resp[1].DisplayName)
}

func TestHandler_CreateSession_Success(t *testing.T) {
	sessionSvc, _, r := setupRouter(t)

	start := time.Now().Add(24 * time.Hour)
	session := &domain.Session{
		ID:           uuid.New().String(),
		Name:         "Morning Yoga",
		StartTime:    start,
		Duration:     time.Hour,
		RepeatMode:   domain.RepeatWeekly,
		MaxAttendees: 10,
		CreatedAt:    time.Now(),
	}

	sessionSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(session, nil)

	body, _ := json.Marshal(dto.CreateSessionRequest{
		Name:            "Morning Yoga",
		StartTime:       start.Format(time.RFC3339),
		DurationMinutes: 60,
		RepeatMode:      "weekly",
		MaxAttendees:    10,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Morning Yoga", resp.Name)
	assert.Equal(t, "weekly", resp.RepeatMode)
}

func TestHandler_CreateSession_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSession_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":"X","start_time":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSession_InvalidRepeatMode(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":"X","start_time":"2025-06-02T09:00:00Z","repeat_mode":"daily"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSession_Success(t *testing.T) {
	sessionSvc, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	session := &domain.Session{
		ID:        sessionID,
		Name:      "Renamed",
		StartTime: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}

	sessionSvc.EXPECT().Update(mock.Anything, sessionID, mock.Anything).Return(session, nil)

	body := []byte(`{"name":"Renamed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/sessions/"+sessionID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Renamed", resp.Name)
}

func TestHandler_UpdateSession_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/sessions/bad-id", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSession_NoFields(t *testing.T) {
	sessionSvc, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	sessionSvc.EXPECT().Update(mock.Anything, sessionID, mock.Anything).Return(nil, domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/sessions/"+sessionID, bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteSession_Success(t *testing.T) {
	sessionSvc, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	sessionSvc.EXPECT().Delete(mock.Anything, sessionID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/sessions/"+sessionID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteSession_NotFound(t *testing.T) {
	sessionSvc, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	sessionSvc.EXPECT().Delete(mock.Anything, sessionID).Return(domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/sessions/"+sessionID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_BookSession_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	sessionID := uuid.New().String()
	resolved := futureResolved(sessionID)
	resolved.Session.Attendees = []domain.Attendee{{UserID: testUserID, BookedAt: time.Now()}}
	resolved.ActiveAttendees = resolved.Session.Attendees

	bookingSvc.EXPECT().Book(mock.Anything, sessionID, testUserID).Return(&resolved, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/book", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sessionID, resp.SessionID)
	assert.Equal(t, 1, resp.AttendingCount)
	assert.Equal(t, 0, resp.WaitingCount)
}

func TestHandler_BookSession_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/bad-id/book", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookSession_AlreadyBooked(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	sessionID := uuid.New().String()
	bookingSvc.EXPECT().Book(mock.Anything, sessionID, testUserID).Return(nil, domain.ErrAlreadyBooked)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/book", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookSession_ActionInFlight(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	sessionID := uuid.New().String()
	bookingSvc.EXPECT().Book(mock.Anything, sessionID, testUserID).Return(nil, domain.ErrActionInFlight)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/book", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UnbookSession_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	sessionID := uuid.New().String()
	resolved := futureResolved(sessionID)

	bookingSvc.EXPECT().Unbook(mock.Anything, sessionID, testUserID).Return(&resolved, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/unbook", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UnbookSession_NotBooked(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	sessionID := uuid.New().String()
	bookingSvc.EXPECT().Unbook(mock.Anything, sessionID, testUserID).Return(nil, domain.ErrNotBooked)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/unbook", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBookingState_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	sessionID := uuid.New().String()
	bookingSvc.EXPECT().State(sessionID, testUserID).Return(booking.StatePendingBook)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID+"/booking-state", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(booking.StatePendingBook), resp.State)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	sessionSvc, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	sessionSvc.EXPECT().GetDetails(mock.Anything, sessionID, testUserID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

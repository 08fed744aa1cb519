package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	httpmiddleware "fittrack/internal/delivery/http/middleware"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubActivityUsecase records inputs and returns canned outputs.
type stubActivityUsecase struct {
	trackView *usecase.ActivityView
	listViews []*usecase.ActivityView
	lastTrack *usecase.TrackActivityInput
	listedFor uuid.UUID
}

func (s *stubActivityUsecase) Track(_ context.Context, input *usecase.TrackActivityInput) (*usecase.ActivityView, error) {
	s.lastTrack = input

	return s.trackView, nil
}

func (s *stubActivityUsecase) ListForUser(_ context.Context, userID uuid.UUID) ([]*usecase.ActivityView, error) {
	s.listedFor = userID

	return s.listViews, nil
}

func TestActivityHandler_Track_OwnerFromToken(t *testing.T) {
	subject := uuid.New()
	uc := &stubActivityUsecase{
		trackView: &usecase.ActivityView{ID: uuid.New(), UserID: subject, Type: "RUNNING"},
	}
	h := NewActivityHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodPost, "/api/activities/create",
		`{"type":"RUNNING","durationMinutes":30,"caloriesBurned":200}`)
	c.Set(httpmiddleware.ContextKeyUserID, subject)

	err := h.Track(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, subject, uc.lastTrack.UserID)
	assert.Equal(t, "RUNNING", uc.lastTrack.Type)
}

func TestActivityHandler_Track_MatchingHeaderAccepted(t *testing.T) {
	subject := uuid.New()
	uc := &stubActivityUsecase{
		trackView: &usecase.ActivityView{ID: uuid.New(), UserID: subject, Type: "YOGA"},
	}
	h := NewActivityHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodPost, "/api/activities/create", `{"type":"YOGA"}`)
	c.Request().Header.Set("userId", subject.String())
	c.Set(httpmiddleware.ContextKeyUserID, subject)

	err := h.Track(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, subject, uc.lastTrack.UserID)
}

func TestActivityHandler_Track_ForeignHeaderRejected(t *testing.T) {
	subject := uuid.New()
	uc := &stubActivityUsecase{}
	h := NewActivityHandler(uc, discardLogger())

	c, _ := newHandlerTestContext(t, http.MethodPost, "/api/activities/create", `{"type":"RUNNING"}`)
	c.Request().Header.Set("USER_ID", uuid.New().String())
	c.Set(httpmiddleware.ContextKeyUserID, subject)

	err := h.Track(c)

	// Impersonating another user via the legacy header is forbidden.
	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	assert.Nil(t, uc.lastTrack)
}

func TestActivityHandler_Track_MissingIdentity(t *testing.T) {
	uc := &stubActivityUsecase{}
	h := NewActivityHandler(uc, discardLogger())

	c, _ := newHandlerTestContext(t, http.MethodPost, "/api/activities/create", `{"type":"RUNNING"}`)

	err := h.Track(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestActivityHandler_ListAll(t *testing.T) {
	subject := uuid.New()
	uc := &stubActivityUsecase{
		listViews: []*usecase.ActivityView{
			{ID: uuid.New(), UserID: subject, Type: "RUNNING"},
			{ID: uuid.New(), UserID: subject, Type: "SWIMMING"},
		},
	}
	h := NewActivityHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodGet, "/api/activities/all", "")
	c.Set(httpmiddleware.ContextKeyUserID, subject)

	err := h.ListAll(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, subject, uc.listedFor)
	assert.Contains(t, rec.Body.String(), "SWIMMING")
}

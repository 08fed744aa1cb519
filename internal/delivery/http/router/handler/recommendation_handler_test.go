package handler

import (
	"context"
	"net/http"
	"testing"

	httpmiddleware "fittrack/internal/delivery/http/middleware"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRecommendationUsecase records inputs and returns canned outputs.
type stubRecommendationUsecase struct {
	generateView *usecase.RecommendationView
	generateErr  error
	listViews     []*usecase.RecommendationView
	activityViews []*usecase.RecommendationView
	lastGenerate  *usecase.GenerateRecommendationInput
	listedFor     uuid.UUID
}

func (s *stubRecommendationUsecase) Generate(_ context.Context, input *usecase.GenerateRecommendationInput) (*usecase.RecommendationView, error) {
	s.lastGenerate = input

	return s.generateView, s.generateErr
}

func (s *stubRecommendationUsecase) ListForUser(_ context.Context, userID uuid.UUID) ([]*usecase.RecommendationView, error) {
	s.listedFor = userID

	return s.listViews, nil
}

func (s *stubRecommendationUsecase) ListForActivity(_ context.Context, _ uuid.UUID) ([]*usecase.RecommendationView, error) {
	return s.activityViews, nil
}

func TestRecommendationHandler_Generate(t *testing.T) {
	subject := uuid.New()
	activityID := uuid.New()
	uc := &stubRecommendationUsecase{
		generateView: &usecase.RecommendationView{ID: uuid.New(), UserID: subject, ActivityID: activityID},
	}
	h := NewRecommendationHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodPost, "/api/recommendations/activity/"+activityID.String(),
		`{"recommendation":"Keep a steady cadence","improvements":["Longer warmup"]}`)
	c.SetParamNames("activityId")
	c.SetParamValues(activityID.String())
	c.Set(httpmiddleware.ContextKeyUserID, subject)

	err := h.Generate(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, subject, uc.lastGenerate.UserID)
	assert.Equal(t, activityID, uc.lastGenerate.ActivityID)
	assert.Equal(t, "Keep a steady cadence", uc.lastGenerate.Recommendation)
}

func TestRecommendationHandler_Generate_BadActivityID(t *testing.T) {
	uc := &stubRecommendationUsecase{}
	h := NewRecommendationHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodPost, "/api/recommendations/activity/not-a-uuid",
		`{"recommendation":"anything"}`)
	c.SetParamNames("activityId")
	c.SetParamValues("not-a-uuid")
	c.Set(httpmiddleware.ContextKeyUserID, uuid.New())

	err := h.Generate(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastGenerate)
}

func TestRecommendationHandler_Generate_MissingBody(t *testing.T) {
	uc := &stubRecommendationUsecase{}
	h := NewRecommendationHandler(uc, discardLogger())

	activityID := uuid.New()
	c, _ := newHandlerTestContext(t, http.MethodPost, "/api/recommendations/activity/"+activityID.String(), `{}`)
	c.SetParamNames("activityId")
	c.SetParamValues(activityID.String())
	c.Set(httpmiddleware.ContextKeyUserID, uuid.New())

	err := h.Generate(c)

	// The recommendation text is required.
	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Nil(t, uc.lastGenerate)
}

func TestRecommendationHandler_ListForUser_OwnRecords(t *testing.T) {
	subject := uuid.New()
	uc := &stubRecommendationUsecase{
		listViews: []*usecase.RecommendationView{
			{ID: uuid.New(), UserID: subject, Recommendation: "Hydrate more"},
		},
	}
	h := NewRecommendationHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodGet, "/api/recommendations/user/"+subject.String(), "")
	c.SetParamNames("userId")
	c.SetParamValues(subject.String())
	c.Set(httpmiddleware.ContextKeyUserID, subject)

	err := h.ListForUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, subject, uc.listedFor)
	assert.Contains(t, rec.Body.String(), "Hydrate more")
}

func TestRecommendationHandler_ListForUser_ForeignUserRejected(t *testing.T) {
	subject := uuid.New()
	other := uuid.New()
	uc := &stubRecommendationUsecase{}
	h := NewRecommendationHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodGet, "/api/recommendations/user/"+other.String(), "")
	c.SetParamNames("userId")
	c.SetParamValues(other.String())
	c.Set(httpmiddleware.ContextKeyUserID, subject)

	err := h.ListForUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, uuid.Nil, uc.listedFor)
}

func TestRecommendationHandler_ListForActivity(t *testing.T) {
	activityID := uuid.New()
	uc := &stubRecommendationUsecase{
		activityViews: []*usecase.RecommendationView{
			{ID: uuid.New(), ActivityID: activityID, Recommendation: "Stretch after"},
			{ID: uuid.New(), ActivityID: activityID, Recommendation: "Hydrate"},
		},
	}
	h := NewRecommendationHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodGet, "/api/recommendations/activity/"+activityID.String(), "")
	c.SetParamNames("activityId")
	c.SetParamValues(activityID.String())

	err := h.ListForActivity(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Stretch after")
	assert.Contains(t, rec.Body.String(), "Hydrate")
}

package handler

import (
	"log/slog"
	"net/http"

	"fittrack/internal/delivery/http/response"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecommendationHandler holds dependencies for recommendation-related handlers.
type RecommendationHandler struct {
	uc     usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler, injected by Fx.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		uc:     uc,
		logger: logger,
	}
}

type generateRecommendationRequest struct {
	Type           string   `json:"type"`
	Recommendation string   `json:"recommendation" validate:"required"`
	Improvements   []string `json:"improvements"`
	Suggestions    []string `json:"suggestions"`
	Safety         []string `json:"safety"`
}

// Generate handles the request to attach a recommendation to an activity.
func (h *RecommendationHandler) Generate(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid activity id")
	}

	var req generateRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recommendation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Generate(c.Request().Context(), &usecase.GenerateRecommendationInput{
		UserID:         userID,
		ActivityID:     activityID,
		Type:           req.Type,
		Recommendation: req.Recommendation,
		Improvements:   req.Improvements,
		Suggestions:    req.Suggestions,
		Safety:         req.Safety,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Recommendation created successfully")
}

// ListForUser handles the request to list a user's recommendations.
// A user may only read their own.
func (h *RecommendationHandler) ListForUser(c echo.Context) error {
	subject, ok := tokenUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "user identity missing from token")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}
	if userID != subject {
		return response.Forbidden(c, "FORBIDDEN", "Cannot read another user's recommendations")
	}

	views, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Recommendations retrieved successfully")
}

// ListForActivity handles the request to fetch the recommendations for an activity.
func (h *RecommendationHandler) ListForActivity(c echo.Context) error {
	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid activity id")
	}

	views, err := h.uc.ListForActivity(c.Request().Context(), activityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Recommendations retrieved successfully")
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/response"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Legacy headers carrying the acting user's id, in the spellings older
// clients send. Honored only when they agree with the token subject.
var legacyUserIDHeaders = []string{"userId", "USER_ID", "X-User-Id"}

// ActivityHandler holds dependencies for activity-related handlers.
type ActivityHandler struct {
	uc     usecase.ActivityUsecase
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		uc:     uc,
		logger: logger,
	}
}

type trackActivityRequest struct {
	Type            string    `json:"type" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"gte=0"`
	CaloriesBurned  int       `json:"caloriesBurned" validate:"gte=0"`
	Notes           string    `json:"notes"`
	StartedAt       time.Time `json:"startedAt"`
}

// tokenUserID extracts the authenticated user's id placed on the context by
// the auth middleware.
func tokenUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// actingUserID resolves the user a request acts on behalf of. A client may
// still send the legacy user id header, but it is only honored when it names
// the token subject; anything else is rejected rather than trusted.
func actingUserID(c echo.Context) (uuid.UUID, error) {
	subject, ok := tokenUserID(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "user identity missing from token")
	}

	var headerValue string
	for _, name := range legacyUserIDHeaders {
		if headerValue = c.Request().Header.Get(name); headerValue != "" {
			break
		}
	}
	if headerValue == "" {
		return subject, nil
	}

	headerID, err := uuid.Parse(headerValue)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid user id header")
	}
	if headerID != subject {
		return uuid.Nil, echo.NewHTTPError(http.StatusForbidden, "user id header does not match authenticated user")
	}

	return subject, nil
}

// Track handles the request to record a new activity.
func (h *ActivityHandler) Track(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	var req trackActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	startedAt := req.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	view, err := h.uc.Track(c.Request().Context(), &usecase.TrackActivityInput{
		UserID:          userID,
		Type:            req.Type,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           req.Notes,
		StartedAt:       startedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Activity tracked successfully")
}

// ListAll handles the request to list the authenticated user's activities.
func (h *ActivityHandler) ListAll(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	views, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Activities retrieved successfully")
}

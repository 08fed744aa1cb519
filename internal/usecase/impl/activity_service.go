package impl

import (
	"context"
	"log/slog"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for activityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		userRepo:     params.UserRepo,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Track records a new activity for the given user.
// The owner must exist: a tracking request for an unknown user is rejected
// outright instead of being stored without an owner.
func (srv *activityService) Track(ctx context.Context, input *usecase.TrackActivityInput) (*usecase.ActivityView, error) {
	srv.log(ctx).Debug("Tracking activity", slog.Any("userID", input.UserID), slog.String("type", input.Type))

	activityType := entity.ActivityType(input.Type)
	if !activityType.IsValid() {
		srv.log(ctx).Warn("Rejected unknown activity type", slog.String("type", input.Type))

		return nil, errors.Wrap(domainerrors.ErrActivityTypeInvalid, "unknown activity type")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Activity owner not found", slog.Any("userID", input.UserID))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "activity owner not found")
		}

		return nil, errors.Wrap(err, "failed to verify activity owner")
	}

	activity := &entity.Activity{
		UserID:          input.UserID,
		Type:            activityType,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		Notes:           input.Notes,
		StartedAt:       input.StartedAt,
	}

	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		srv.log(ctx).Error("Failed to create activity", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create activity")
	}

	srv.log(ctx).Debug("Activity tracked", slog.Any("activityID", activity.ID))

	return usecase.NewActivityView(activity), nil
}

// ListForUser returns every activity the given user has tracked, oldest first.
func (srv *activityService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*usecase.ActivityView, error) {
	activities, err := srv.activityRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list activities", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list activities")
	}

	views := make([]*usecase.ActivityView, 0, len(activities))
	for _, activity := range activities {
		views = append(views, usecase.NewActivityView(activity))
	}

	return views, nil
}

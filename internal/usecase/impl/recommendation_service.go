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

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	txManager          repository.TransactionManager
	recommendationRepo repository.RecommendationRepository
	logger             *slog.Logger
}

// RecommendationServiceParams holds dependencies for recommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	TxManager          repository.TransactionManager
	RecommendationRepo repository.RecommendationRepository
	Logger             *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		txManager:          params.TxManager,
		recommendationRepo: params.RecommendationRepo,
		logger:             params.Logger,
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate persists a recommendation for an activity. Both referenced rows are
// verified inside the same transaction as the insert, so a dangling user or
// activity means nothing is written.
func (srv *recommendationService) Generate(ctx context.Context, input *usecase.GenerateRecommendationInput) (*usecase.RecommendationView, error) {
	srv.log(ctx).Debug("Generating recommendation", slog.Any("userID", input.UserID), slog.Any("activityID", input.ActivityID))

	rec := &entity.Recommendation{
		UserID:         input.UserID,
		ActivityID:     input.ActivityID,
		Type:           entity.ActivityType(input.Type),
		Recommendation: input.Recommendation,
		Improvements:   input.Improvements,
		Suggestions:    input.Suggestions,
		Safety:         input.Safety,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		activityRepo := repoFactory.ActivityRepo()
		recRepo := repoFactory.RecommendationRepo()

		if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "recommendation user not found")
			}

			return errors.Wrap(err, "failed to verify recommendation user")
		}

		activity, err := activityRepo.FindByID(ctx, input.ActivityID)
		if err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return errors.Wrap(domainerrors.ErrActivityNotFound, "recommendation activity not found")
			}

			return errors.Wrap(err, "failed to verify recommendation activity")
		}

		// The recommendation inherits the activity's type unless the caller
		// tagged it explicitly.
		if rec.Type == "" {
			rec.Type = activity.Type
		}

		if err := recRepo.Create(ctx, rec); err != nil {
			return errors.Wrap(err, "failed to create recommendation")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to generate recommendation", slog.Any("activityID", input.ActivityID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute recommendation transaction")
	}

	srv.log(ctx).Debug("Recommendation generated", slog.Any("recommendationID", rec.ID))

	return usecase.NewRecommendationView(rec), nil
}

// ListForUser returns every recommendation generated for the given user.
func (srv *recommendationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*usecase.RecommendationView, error) {
	recs, err := srv.recommendationRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list recommendations", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	views := make([]*usecase.RecommendationView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, usecase.NewRecommendationView(rec))
	}

	return views, nil
}

// ListForActivity returns every recommendation attached to the given activity.
// An activity with no recommendations yields an empty list.
func (srv *recommendationService) ListForActivity(ctx context.Context, activityID uuid.UUID) ([]*usecase.RecommendationView, error) {
	recs, err := srv.recommendationRepo.FindByActivity(ctx, activityID)
	if err != nil {
		srv.log(ctx).Error("Failed to list recommendations", slog.Any("activityID", activityID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recommendations for activity")
	}

	views := make([]*usecase.RecommendationView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, usecase.NewRecommendationView(rec))
	}

	return views, nil
}

package postgres

import (
	"context"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recommendationRepository implements the repository.RecommendationRepository interface.
type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository is the constructor for recommendationRepository.
func NewRecommendationRepository(db *gorm.DB) repository.RecommendationRepository {
	return &recommendationRepository{
		db: db,
	}
}

// Create persists a new recommendation record.
func (repo *recommendationRepository) Create(ctx context.Context, rec *entity.Recommendation) error {
	recM := fromRecommendationDomain(rec)

	if err := repo.db.WithContext(ctx).Create(recM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrActivityNotFound.WrapMessage("referenced activity or user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recommendation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recommendation")
	}

	rec.ID = recM.ID
	rec.CreatedAt = recM.CreatedAt
	rec.UpdatedAt = recM.UpdatedAt

	return nil
}

// FindByUser retrieves all recommendations generated for a user, in insertion order.
func (repo *recommendationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Recommendation, error) {
	var recModels []*model.RecommendationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&recModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recommendations by user")
	}

	recs := make([]*entity.Recommendation, 0, len(recModels))
	for _, recM := range recModels {
		recs = append(recs, toRecommendationDomain(recM))
	}

	return recs, nil
}

// FindByActivity retrieves all recommendations attached to an activity, in insertion order.
func (repo *recommendationRepository) FindByActivity(ctx context.Context, activityID uuid.UUID) ([]*entity.Recommendation, error) {
	var recModels []*model.RecommendationModel

	if err := repo.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at ASC").
		Find(&recModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recommendations by activity")
	}

	recs := make([]*entity.Recommendation, 0, len(recModels))
	for _, recM := range recModels {
		recs = append(recs, toRecommendationDomain(recM))
	}

	return recs, nil
}

// --- Mapper Functions ---

// toRecommendationDomain converts a GORM RecommendationModel to a domain Recommendation entity.
func toRecommendationDomain(data *model.RecommendationModel) *entity.Recommendation {
	if data == nil {
		return nil
	}

	return &entity.Recommendation{
		ID:             data.ID,
		UserID:         data.UserID,
		ActivityID:     data.ActivityID,
		Type:           entity.ActivityType(data.Type),
		Recommendation: data.Recommendation,
		Improvements:   []string(data.Improvements),
		Suggestions:    []string(data.Suggestions),
		Safety:         []string(data.Safety),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromRecommendationDomain converts a domain Recommendation entity to a GORM RecommendationModel.
func fromRecommendationDomain(data *entity.Recommendation) *model.RecommendationModel {
	if data == nil {
		return nil
	}

	return &model.RecommendationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		ActivityID:     data.ActivityID,
		Type:           data.Type.String(),
		Recommendation: data.Recommendation,
		Improvements:   datatypes.NewJSONSlice(data.Improvements),
		Suggestions:    datatypes.NewJSONSlice(data.Suggestions),
		Safety:         datatypes.NewJSONSlice(data.Safety),
	}
}

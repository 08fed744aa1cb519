package postgres

import (
	"context"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create persists a new activity for a user.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("activity owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required activity information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	// Update the entity with generated values
	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

// FindByID retrieves an activity by its unique ID.
func (repo *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&activityM), nil
}

// FindByUser retrieves all activities owned by a specific user, in insertion order.
func (repo *activityRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activities by user")
	}

	activities := make([]*entity.Activity, 0, len(activityModels))
	for _, activityM := range activityModels {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}

// --- Mapper Functions ---

// toActivityDomain converts a GORM ActivityModel to a domain Activity entity.
func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	return &entity.Activity{
		ID:              data.ID,
		UserID:          data.UserID,
		Type:            entity.ActivityType(data.ActivityType),
		DurationMinutes: data.DurationMinutes,
		CaloriesBurned:  data.CaloriesBurned,
		Notes:           data.Notes,
		StartedAt:       data.StartedAt,
		CreatedAt:       data.CreatedAt,
	}
}

// fromActivityDomain converts a domain Activity entity to a GORM ActivityModel.
func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:              data.ID,
		UserID:          data.UserID,
		ActivityType:    data.Type.String(),
		DurationMinutes: data.DurationMinutes,
		CaloriesBurned:  data.CaloriesBurned,
		Notes:           data.Notes,
		StartedAt:       data.StartedAt,
	}
}

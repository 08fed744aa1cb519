package impl

import (
	"context"
	"testing"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recommendationServiceFixtures struct {
	service    usecase.RecommendationUsecase
	users      *fakeUserRepo
	activities *fakeActivityRepo
	recs       *fakeRecommendationRepo
}

func createTestRecommendationService(t *testing.T) recommendationServiceFixtures {
	t.Helper()

	users := newFakeUserRepo()
	activities := newFakeActivityRepo()
	recs := newFakeRecommendationRepo()
	factory := &fakeRepoFactory{
		users:      users,
		activities: activities,
		recs:       recs,
		tokens:     newFakeRefreshTokenRepo(),
	}

	service := NewRecommendationService(RecommendationServiceParams{
		TxManager:          &fakeTxManager{factory: factory},
		RecommendationRepo: recs,
		Logger:             newDiscardLogger(),
	})

	return recommendationServiceFixtures{
		service:    service,
		users:      users,
		activities: activities,
		recs:       recs,
	}
}

func trackTestActivity(t *testing.T, fixtures recommendationServiceFixtures, userID uuid.UUID) uuid.UUID {
	t.Helper()

	service := NewActivityService(ActivityServiceParams{
		UserRepo:     fixtures.users,
		ActivityRepo: fixtures.activities,
		Logger:       newDiscardLogger(),
	})

	view, err := service.Track(context.Background(), &usecase.TrackActivityInput{
		UserID:          userID,
		Type:            "RUNNING",
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	return view.ID
}

func TestRecommendationService_Generate_Success(t *testing.T) {
	fixtures := createTestRecommendationService(t)

	ctx := context.Background()
	userID := registerTestUser(t, fixtures.users, "runner@example.com")
	activityID := trackTestActivity(t, fixtures, userID)

	view, err := fixtures.service.Generate(ctx, &usecase.GenerateRecommendationInput{
		UserID:         userID,
		ActivityID:     activityID,
		Recommendation: "Increase weekly mileage gradually.",
		Improvements:   []string{"Longer warm-up"},
		Suggestions:    []string{"Add one interval session per week"},
		Safety:         []string{"Stay hydrated"},
	})

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, userID, view.UserID)
	assert.Equal(t, activityID, view.ActivityID)
	// Untagged recommendations inherit the activity's type.
	assert.Equal(t, "RUNNING", view.Type)
	assert.Equal(t, 1, fixtures.recs.Count())
}

func TestRecommendationService_Generate_UnknownActivity(t *testing.T) {
	fixtures := createTestRecommendationService(t)

	ctx := context.Background()
	userID := registerTestUser(t, fixtures.users, "runner@example.com")

	view, err := fixtures.service.Generate(ctx, &usecase.GenerateRecommendationInput{
		UserID:         userID,
		ActivityID:     uuid.New(),
		Recommendation: "orphaned",
	})

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
	// Nothing may be persisted when the activity reference is dangling.
	assert.Equal(t, 0, fixtures.recs.Count())
}

func TestRecommendationService_Generate_UnknownUser(t *testing.T) {
	fixtures := createTestRecommendationService(t)

	ctx := context.Background()
	view, err := fixtures.service.Generate(ctx, &usecase.GenerateRecommendationInput{
		UserID:     uuid.New(),
		ActivityID: uuid.New(),
	})

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Equal(t, 0, fixtures.recs.Count())
}

func TestRecommendationService_ListForUser(t *testing.T) {
	fixtures := createTestRecommendationService(t)

	ctx := context.Background()
	aliceID := registerTestUser(t, fixtures.users, "alice@example.com")
	bobID := registerTestUser(t, fixtures.users, "bob@example.com")

	aliceActivity := trackTestActivity(t, fixtures, aliceID)
	bobActivity := trackTestActivity(t, fixtures, bobID)

	_, err := fixtures.service.Generate(ctx, &usecase.GenerateRecommendationInput{
		UserID: aliceID, ActivityID: aliceActivity, Recommendation: "for alice",
	})
	require.NoError(t, err)
	_, err = fixtures.service.Generate(ctx, &usecase.GenerateRecommendationInput{
		UserID: bobID, ActivityID: bobActivity, Recommendation: "for bob",
	})
	require.NoError(t, err)

	views, err := fixtures.service.ListForUser(ctx, aliceID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "for alice", views[0].Recommendation)
}

func TestRecommendationService_ListForActivity(t *testing.T) {
	fixtures := createTestRecommendationService(t)

	ctx := context.Background()
	userID := registerTestUser(t, fixtures.users, "runner@example.com")
	activityID := trackTestActivity(t, fixtures, userID)
	otherActivity := trackTestActivity(t, fixtures, userID)

	_, err := fixtures.service.Generate(ctx, &usecase.GenerateRecommendationInput{
		UserID: userID, ActivityID: activityID, Recommendation: "rest more",
	})
	require.NoError(t, err)
	_, err = fixtures.service.Generate(ctx, &usecase.GenerateRecommendationInput{
		UserID: userID, ActivityID: otherActivity, Recommendation: "hydrate",
	})
	require.NoError(t, err)

	views, err := fixtures.service.ListForActivity(ctx, activityID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "rest more", views[0].Recommendation)
	assert.Equal(t, activityID, views[0].ActivityID)
}

func TestRecommendationService_ListForActivity_Empty(t *testing.T) {
	fixtures := createTestRecommendationService(t)

	views, err := fixtures.service.ListForActivity(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, views)
}

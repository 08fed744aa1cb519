package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"fittrack/config"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

// --- in-memory repository fakes ---

type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeRepoFactory struct {
	users      *fakeUserRepo
	activities *fakeActivityRepo
	recs       *fakeRecommendationRepo
	tokens     *fakeRefreshTokenRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository { return f.users }

func (f *fakeRepoFactory) ActivityRepo() repository.ActivityRepository { return f.activities }

func (f *fakeRepoFactory) RecommendationRepo() repository.RecommendationRepository { return f.recs }

func (f *fakeRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository { return f.tokens }

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

type fakeActivityRepo struct {
	mu         sync.Mutex
	activities []*entity.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *entity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity.ID = uuid.New()
	activity.CreatedAt = time.Now()

	copied := *activity
	r.activities = append(r.activities, &copied)

	return nil
}

func (r *fakeActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, activity := range r.activities {
		if activity.ID == id {
			copied := *activity

			return &copied, nil
		}
	}

	return nil, repository.ErrActivityNotFound
}

func (r *fakeActivityRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []*entity.Activity
	for _, activity := range r.activities {
		if activity.UserID == userID {
			copied := *activity
			owned = append(owned, &copied)
		}
	}

	return owned, nil
}

type fakeRecommendationRepo struct {
	mu   sync.Mutex
	recs []*entity.Recommendation
}

func newFakeRecommendationRepo() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{}
}

func (r *fakeRecommendationRepo) Create(_ context.Context, rec *entity.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt

	copied := *rec
	r.recs = append(r.recs, &copied)

	return nil
}

func (r *fakeRecommendationRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Recommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []*entity.Recommendation
	for _, rec := range r.recs {
		if rec.UserID == userID {
			copied := *rec
			owned = append(owned, &copied)
		}
	}

	return owned, nil
}

func (r *fakeRecommendationRepo) FindByActivity(_ context.Context, activityID uuid.UUID) ([]*entity.Recommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var attached []*entity.Recommendation
	for _, rec := range r.recs {
		if rec.ActivityID == activityID {
			copied := *rec
			attached = append(attached, &copied)
		}
	}

	return attached, nil
}

// Count reports how many recommendations have been persisted.
func (r *fakeRecommendationRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.recs)
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	byHash map[string]*entity.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{byHash: make(map[string]*entity.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token.ID = uuid.New()
	token.CreatedAt = time.Now()

	copied := *token
	r.byHash[token.TokenHash] = &copied

	return nil
}

func (r *fakeRefreshTokenRepo) FindByTokenHash(_ context.Context, hash string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.byHash[hash]
	if !ok {
		return nil, repository.ErrTokenNotFound
	}

	copied := *token

	return &copied, nil
}

func (r *fakeRefreshTokenRepo) DeleteByTokenHash(_ context.Context, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byHash, hash)

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for hash, token := range r.byHash {
		if token.UserID == userID {
			delete(r.byHash, hash)
		}
	}

	return nil
}

// StoredTokens reports how many refresh tokens are currently persisted.
func (r *fakeRefreshTokenRepo) StoredTokens() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byHash)
}

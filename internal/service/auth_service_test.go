package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/moderation-backend/internal/models"
	"github.com/ignatzorin/moderation-backend/internal/repository"
)

type mockReviewerRepo struct {
	mock.Mock
}

func (m *mockReviewerRepo) Create(ctx context.Context, reviewer *models.Reviewer) error {
	args := m.Called(ctx, reviewer)
	if args.Error(0) == nil {
		reviewer.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockReviewerRepo) GetByEmail(ctx context.Context, email string) (*models.Reviewer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reviewer), args.Error(1)
}

func (m *mockReviewerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Reviewer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reviewer), args.Error(1)
}

func testTokenManager() *TokenManager {
	return NewTokenManager("test-access-secret", "test-refresh-secret", 15*time.Minute, 24*time.Hour)
}

func testReviewer(t *testing.T, password string) *models.Reviewer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &models.Reviewer{
		ID:           uuid.New(),
		Email:        "moderator@example.com",
		PasswordHash: string(hash),
		DisplayName:  "Модератор",
		Role:         models.ReviewerRoleReviewer,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := new(mockReviewerRepo)
	svc := NewAuthService(repo, testTokenManager())
	ctx := context.Background()

	reviewer := testReviewer(t, "secret123")
	repo.On("GetByEmail", ctx, "moderator@example.com").Return(reviewer, nil)

	result, err := svc.Login(ctx, "  Moderator@Example.COM ", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, reviewer.ID, result.Reviewer.ID)
	assert.NotEmpty(t, result.TokenPair.AccessToken)
	assert.NotEmpty(t, result.TokenPair.RefreshToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := new(mockReviewerRepo)
	svc := NewAuthService(repo, testTokenManager())
	ctx := context.Background()

	reviewer := testReviewer(t, "secret123")
	repo.On("GetByEmail", ctx, "moderator@example.com").Return(reviewer, nil)

	_, err := svc.Login(ctx, "moderator@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := new(mockReviewerRepo)
	svc := NewAuthService(repo, testTokenManager())
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrReviewerNotFound)

	_, err := svc.Login(ctx, "ghost@example.com", "secret123")

	// Одна и та же ошибка для несуществующей учётки и неверного пароля.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_InvalidEmail(t *testing.T) {
	repo := new(mockReviewerRepo)
	svc := NewAuthService(repo, testTokenManager())

	_, err := svc.Login(context.Background(), "not-an-email", "secret123")

	assert.Error(t, err)
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	repo := new(mockReviewerRepo)
	tm := testTokenManager()
	svc := NewAuthService(repo, tm)
	ctx := context.Background()

	reviewer := testReviewer(t, "secret123")
	pair, err := tm.GeneratePair(reviewer)
	assert.NoError(t, err)

	repo.On("GetByID", ctx, reviewer.ID).Return(reviewer, nil)

	result, err := svc.Refresh(ctx, pair.RefreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, result.TokenPair.AccessToken)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	repo := new(mockReviewerRepo)
	tm := testTokenManager()
	svc := NewAuthService(repo, tm)

	reviewer := testReviewer(t, "secret123")
	pair, err := tm.GeneratePair(reviewer)
	assert.NoError(t, err)

	// Access токен подписан другим секретом и не годится для refresh.
	_, err = svc.Refresh(context.Background(), pair.AccessToken)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_EnsureBootstrapAdmin(t *testing.T) {
	repo := new(mockReviewerRepo)
	svc := NewAuthService(repo, testTokenManager())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Reviewer")).Return(nil)

	err := svc.EnsureBootstrapAdmin(ctx, "Admin@Example.com", "bootstrap-pass")

	assert.NoError(t, err)
	repo.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(r *models.Reviewer) bool {
		return r.Email == "admin@example.com" && r.Role == models.ReviewerRoleAdmin
	}))
}

func TestAuthService_EnsureBootstrapAdmin_Disabled(t *testing.T) {
	repo := new(mockReviewerRepo)
	svc := NewAuthService(repo, testTokenManager())

	assert.NoError(t, svc.EnsureBootstrapAdmin(context.Background(), "", ""))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

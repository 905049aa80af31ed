package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/ignatzorin/moderation-backend/internal/logger"
	"github.com/ignatzorin/moderation-backend/internal/models"
	"github.com/ignatzorin/moderation-backend/internal/repository"
	"github.com/ignatzorin/moderation-backend/internal/validation"
)

var ErrInvalidCredentials = errors.New("неверные учётные данные")

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	Create(ctx context.Context, reviewer *models.Reviewer) error
	GetByEmail(ctx context.Context, email string) (*models.Reviewer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reviewer, error)
}

// AuthService инкапсулирует аутентификацию ревьюеров консоли модерации.
type AuthService struct {
	repo         AuthRepository
	tokenManager *TokenManager
}

// AuthResult возвращает итог авторизации.
type AuthResult struct {
	Reviewer  *models.Reviewer
	TokenPair *TokenPair
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(repo AuthRepository, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		repo:         repo,
		tokenManager: tokenManager,
	}
}

// Login проверяет пароль ревьюера и выпускает пару токенов.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	reviewer, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrReviewerNotFound) {
		// Не раскрываем, существует ли учётка.
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(reviewer.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokenManager.GeneratePair(reviewer)
	if err != nil {
		return nil, fmt.Errorf("auth service: не удалось выпустить токены: %w", err)
	}

	return &AuthResult{Reviewer: reviewer, TokenPair: pair}, nil
}

// Refresh выпускает новую пару токенов по refresh токену.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.tokenManager.ParseRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	reviewerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	reviewer, err := s.repo.GetByID(ctx, reviewerID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	pair, err := s.tokenManager.GeneratePair(reviewer)
	if err != nil {
		return nil, fmt.Errorf("auth service: не удалось выпустить токены: %w", err)
	}

	return &AuthResult{Reviewer: reviewer, TokenPair: pair}, nil
}

// EnsureBootstrapAdmin создаёт администратора консоли при старте, если
// его ещё нет. Пустые email/password отключают bootstrap.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("auth service: bootstrap admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth service: не удалось захэшировать пароль: %w", err)
	}

	reviewer := &models.Reviewer{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  "Administrator",
		Role:         models.ReviewerRoleAdmin,
	}

	if err := s.repo.Create(ctx, reviewer); err != nil {
		return fmt.Errorf("auth service: не удалось создать администратора: %w", err)
	}

	if logger.Log != nil && reviewer.ID != uuid.Nil {
		logger.Log.WithField("email", email).Info("создан bootstrap администратор консоли")
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/moderation-backend/internal/models"
)

var ErrReviewerNotFound = errors.New("ревьюер не найден")

type ReviewerRepository struct {
	db *sqlx.DB
}

func NewReviewerRepository(db *sqlx.DB) *ReviewerRepository {
	return &ReviewerRepository{db: db}
}

// Create сохраняет учётную запись ревьюера. При конфликте по email
// запись не перезаписывается (используется для bootstrap при старте).
func (r *ReviewerRepository) Create(ctx context.Context, reviewer *models.Reviewer) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviewers (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, created_at
	`, reviewer.Email, reviewer.PasswordHash, reviewer.DisplayName, reviewer.Role).
		Scan(&reviewer.ID, &reviewer.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Конфликт: учётка уже существует, это не ошибка для bootstrap.
		return nil
	}
	return err
}

func (r *ReviewerRepository) GetByEmail(ctx context.Context, email string) (*models.Reviewer, error) {
	var reviewer models.Reviewer
	err := r.db.GetContext(ctx, &reviewer, `SELECT * FROM reviewers WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reviewer, nil
}

func (r *ReviewerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Reviewer, error) {
	var reviewer models.Reviewer
	err := r.db.GetContext(ctx, &reviewer, `SELECT * FROM reviewers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reviewer, nil
}

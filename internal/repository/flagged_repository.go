package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/moderation-backend/internal/models"
)

var ErrFlaggedNotFound = errors.New("flagged запись не найдена")

// FlaggedFilter — параметры выборки flagged записей.
type FlaggedFilter struct {
	Reviewed *bool
	PostID   string
	Limit    int
	Offset   int
}

type FlaggedRepository struct {
	db *sqlx.DB
}

func NewFlaggedRepository(db *sqlx.DB) *FlaggedRepository {
	return &FlaggedRepository{db: db}
}

// Create сохраняет новую запись. Флаги reviewed/is_visible берутся из
// дефолтов базы (false/false) вне зависимости от того, что пришло в модели.
func (r *FlaggedRepository) Create(ctx context.Context, rec *models.FlaggedContent) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO flagged_content (parent_type, post_id, comment_id, reply_id, content, reason, reported_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, flagged_at, reviewed, is_visible
	`, rec.ParentType, rec.PostID, rec.CommentID, rec.ReplyID, rec.Content, rec.Reason, rec.ReportedBy).
		Scan(&rec.ID, &rec.FlaggedAt, &rec.Reviewed, &rec.IsVisible)
}

func (r *FlaggedRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FlaggedContent, error) {
	var rec models.FlaggedContent
	err := r.db.GetContext(ctx, &rec, `SELECT * FROM flagged_content WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFlaggedNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List возвращает записи в порядке создания.
func (r *FlaggedRepository) List(ctx context.Context, filter FlaggedFilter) ([]models.FlaggedContent, error) {
	query := `SELECT * FROM flagged_content WHERE 1=1`
	args := []interface{}{}

	if filter.Reviewed != nil {
		args = append(args, *filter.Reviewed)
		query += ` AND reviewed = $` + strconv.Itoa(len(args))
	}
	if filter.PostID != "" {
		args = append(args, filter.PostID)
		query += ` AND post_id = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY flagged_at ASC, id ASC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	records := []models.FlaggedContent{}
	err := r.db.SelectContext(ctx, &records, query, args...)
	return records, err
}

// SetDecision атомарно обновляет оба флага решения и возвращает новое
// состояние записи. Единственный путь мутации flagged записи.
func (r *FlaggedRepository) SetDecision(ctx context.Context, id uuid.UUID, reviewed, visible bool) (*models.FlaggedContent, error) {
	var rec models.FlaggedContent
	err := r.db.GetContext(ctx, &rec, `
		UPDATE flagged_content
		SET reviewed = $2, is_visible = $3
		WHERE id = $1
		RETURNING *
	`, id, reviewed, visible)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFlaggedNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

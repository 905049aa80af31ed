package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/moderation-backend/internal/models"
)

var (
	ErrTriggerNotFound      = errors.New("триггерная фраза не найдена")
	ErrDuplicateTriggerWord = errors.New("триггерная фраза уже существует")
)

// Код ошибки PostgreSQL unique_violation.
const pgUniqueViolation = "23505"

type TriggerRepository struct {
	db *sqlx.DB
}

func NewTriggerRepository(db *sqlx.DB) *TriggerRepository {
	return &TriggerRepository{db: db}
}

// List возвращает все триггерные фразы. Сканер перечитывает список на
// каждый вызов: никакого кеша, снапшот актуален на момент запроса.
func (r *TriggerRepository) List(ctx context.Context) ([]models.TriggerWord, error) {
	words := []models.TriggerWord{}
	err := r.db.SelectContext(ctx, &words, `SELECT * FROM trigger_words ORDER BY created_at ASC, id ASC`)
	return words, err
}

// Create вставляет новую фразу. Проверка уникальности (без учёта
// регистра) и вставка — один атомарный шаг за счёт уникального индекса
// по lower(word), гонки двух одинаковых add исключены.
func (r *TriggerRepository) Create(ctx context.Context, word *models.TriggerWord) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO trigger_words (word, category)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, word.Word, word.Category).Scan(&word.ID, &word.CreatedAt, &word.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return ErrDuplicateTriggerWord
	}
	return err
}

func (r *TriggerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trigger_words WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTriggerNotFound
	}
	return nil
}

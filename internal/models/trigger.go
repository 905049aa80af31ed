package models

import (
	"time"

	"github.com/google/uuid"
)

// TriggerWord — фраза, наличие которой в контенте приводит к флагу.
// Уникальность слова обеспечивается на уровне базы (индекс по lower(word)).
type TriggerWord struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Word      string    `db:"word" json:"word"`
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

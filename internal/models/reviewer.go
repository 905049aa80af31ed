package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли ревьюеров консоли модерации.
const (
	ReviewerRoleReviewer = "reviewer"
	ReviewerRoleAdmin    = "admin"
)

// Reviewer — учётная запись ревьюера консоли модерации.
// Обычные пользователи приложения сюда не попадают: их идентификатор
// приходит извне как непрозрачная строка (reported_by).
type Reviewer struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

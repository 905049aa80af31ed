package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы родительского контента для flagged записи.
const (
	ParentTypePost    = "post"
	ParentTypeComment = "comment"
	ParentTypeReply   = "reply"
)

// FlaggedContent — запись о контенте, помеченном модерацией.
// post_id/comment_id/reply_id — идентификаторы документов во внешнем
// live-хранилище (Firebase), для нас это непрозрачные строки.
type FlaggedContent struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ParentType string    `db:"parent_type" json:"parent_type"`
	PostID     string    `db:"post_id" json:"post_id"`
	CommentID  *string   `db:"comment_id" json:"comment_id,omitempty"`
	ReplyID    *string   `db:"reply_id" json:"reply_id,omitempty"`
	Content    string    `db:"content" json:"content"`
	Reason     string    `db:"reason" json:"reason"`
	ReportedBy string    `db:"reported_by" json:"reported_by"`
	FlaggedAt  time.Time `db:"flagged_at" json:"flagged_at"`
	Reviewed   bool      `db:"reviewed" json:"reviewed"`
	IsVisible  bool      `db:"is_visible" json:"is_visible"`
}

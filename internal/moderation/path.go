package moderation

import (
	"errors"
	"fmt"

	"github.com/ignatzorin/moderation-backend/internal/models"
)

// ErrInvalidHierarchy означает, что цепочка идентификаторов записи не
// согласуется с её parent_type. После валидации при создании такое
// состояние недостижимо, но резолвер на это не полагается.
var ErrInvalidHierarchy = errors.New("цепочка идентификаторов не согласуется с parent_type")

// ResolvePath строит путь документа во внешнем хранилище:
// Posts/{postId}[/Comments/{commentId}[/Replies/{replyId}]].
func ResolvePath(rec *models.FlaggedContent) (string, error) {
	if rec.PostID == "" {
		return "", fmt.Errorf("resolve path: post_id пуст: %w", ErrInvalidHierarchy)
	}

	commentID := ""
	if rec.CommentID != nil {
		commentID = *rec.CommentID
	}
	replyID := ""
	if rec.ReplyID != nil {
		replyID = *rec.ReplyID
	}

	switch rec.ParentType {
	case models.ParentTypePost:
		if commentID != "" || replyID != "" {
			return "", fmt.Errorf("resolve path: лишние идентификаторы для post: %w", ErrInvalidHierarchy)
		}
		return fmt.Sprintf("Posts/%s", rec.PostID), nil

	case models.ParentTypeComment:
		if commentID == "" || replyID != "" {
			return "", fmt.Errorf("resolve path: некорректная цепочка для comment: %w", ErrInvalidHierarchy)
		}
		return fmt.Sprintf("Posts/%s/Comments/%s", rec.PostID, commentID), nil

	case models.ParentTypeReply:
		if commentID == "" || replyID == "" {
			return "", fmt.Errorf("resolve path: некорректная цепочка для reply: %w", ErrInvalidHierarchy)
		}
		return fmt.Sprintf("Posts/%s/Comments/%s/Replies/%s", rec.PostID, commentID, replyID), nil

	default:
		return "", fmt.Errorf("resolve path: неизвестный parent_type %q: %w", rec.ParentType, ErrInvalidHierarchy)
	}
}

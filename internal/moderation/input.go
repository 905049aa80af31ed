package moderation

import (
	"fmt"

	"github.com/ignatzorin/moderation-backend/internal/models"
	"github.com/ignatzorin/moderation-backend/internal/pkg/apperror"
	"github.com/ignatzorin/moderation-backend/internal/validation"
)

// FlagInput — данные для создания flagged записи.
// Пустая строка означает отсутствие значения.
type FlagInput struct {
	ParentType string
	PostID     string
	CommentID  string
	ReplyID    string
	Content    string
	Reason     string
	ReportedBy string
}

// Validate проверяет обязательные поля в фиксированном порядке:
// content, reason, reported_by, затем цепочка идентификаторов по типу
// родителя (post_id, comment_id, reply_id). Возвращает ошибку о первом
// отсутствующем поле.
func (in FlagInput) Validate() error {
	switch in.ParentType {
	case models.ParentTypePost, models.ParentTypeComment, models.ParentTypeReply:
	default:
		e := apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("неизвестный parent_type %q", in.ParentType))
		e.Field = "parent_type"
		return e
	}

	if in.Content == "" {
		return apperror.MissingField("content")
	}
	if in.Reason == "" {
		return apperror.MissingField("reason")
	}
	if in.ReportedBy == "" {
		return apperror.MissingField("reported_by")
	}
	if in.PostID == "" {
		return apperror.MissingField("post_id")
	}
	if in.ParentType == models.ParentTypeComment || in.ParentType == models.ParentTypeReply {
		if in.CommentID == "" {
			return apperror.MissingField("comment_id")
		}
	}
	if in.ParentType == models.ParentTypeReply && in.ReplyID == "" {
		return apperror.MissingField("reply_id")
	}

	if err := validation.ValidateLength("content", in.Content, 1, validation.MaxContentLength); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateLength("reason", in.Reason, 1, validation.MaxReasonLength); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	for field, value := range map[string]string{
		"post_id":    in.PostID,
		"comment_id": in.CommentID,
		"reply_id":   in.ReplyID,
	} {
		if err := validation.ValidateExternalID(field, value); err != nil {
			e := apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
			e.Field = field
			return e
		}
	}

	// Лишние идентификаторы для объявленного типа тоже запрещены:
	// запись с comment_id при parent_type=post создать нельзя.
	if in.ParentType == models.ParentTypePost && (in.CommentID != "" || in.ReplyID != "") {
		e := apperror.New(apperror.ErrCodeValidation, "comment_id/reply_id не допускаются при parent_type=post")
		e.Field = "parent_type"
		return e
	}
	if in.ParentType == models.ParentTypeComment && in.ReplyID != "" {
		e := apperror.New(apperror.ErrCodeValidation, "reply_id не допускается при parent_type=comment")
		e.Field = "parent_type"
		return e
	}

	return nil
}

// Record собирает модель из проверенного ввода. Флаги reviewed/is_visible
// при создании всегда false.
func (in FlagInput) Record() *models.FlaggedContent {
	rec := &models.FlaggedContent{
		ParentType: in.ParentType,
		PostID:     in.PostID,
		Content:    in.Content,
		Reason:     in.Reason,
		ReportedBy: in.ReportedBy,
	}
	if in.CommentID != "" {
		commentID := in.CommentID
		rec.CommentID = &commentID
	}
	if in.ReplyID != "" {
		replyID := in.ReplyID
		rec.ReplyID = &replyID
	}
	return rec
}

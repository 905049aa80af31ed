package moderation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/moderation-backend/internal/models"
	"github.com/ignatzorin/moderation-backend/internal/pkg/apperror"
	"github.com/ignatzorin/moderation-backend/internal/validation"
)

func validCommentInput() FlagInput {
	return FlagInput{
		ParentType: models.ParentTypeComment,
		PostID:     "p1",
		CommentID:  "c2",
		Content:    "feeling kms today",
		Reason:     "Triggering Language",
		ReportedBy: "user-42",
	}
}

func missingField(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.ErrCodeValidation, appErr.Code)
	return appErr.Field
}

func TestFlagInputValidate_OK(t *testing.T) {
	assert.NoError(t, validCommentInput().Validate())
}

func TestFlagInputValidate_UnknownParentType(t *testing.T) {
	in := validCommentInput()
	in.ParentType = "story"

	assert.Equal(t, "parent_type", missingField(t, in.Validate()))
}

func TestFlagInputValidate_FieldOrder(t *testing.T) {
	// Проверка первого отсутствующего поля в фиксированном порядке:
	// content, reason, reported_by, post_id, comment_id, reply_id.
	in := FlagInput{ParentType: models.ParentTypeReply}
	assert.Equal(t, "content", missingField(t, in.Validate()))

	in.Content = "bad content"
	assert.Equal(t, "reason", missingField(t, in.Validate()))

	in.Reason = "harassment"
	assert.Equal(t, "reported_by", missingField(t, in.Validate()))

	in.ReportedBy = "user-42"
	assert.Equal(t, "post_id", missingField(t, in.Validate()))

	in.PostID = "p1"
	assert.Equal(t, "comment_id", missingField(t, in.Validate()))

	in.CommentID = "c2"
	assert.Equal(t, "reply_id", missingField(t, in.Validate()))

	in.ReplyID = "r3"
	assert.NoError(t, in.Validate())
}

func TestFlagInputValidate_PostNeedsOnlyPostID(t *testing.T) {
	in := FlagInput{
		ParentType: models.ParentTypePost,
		PostID:     "p1",
		Content:    "bad content",
		Reason:     "spam",
		ReportedBy: "user-42",
	}

	assert.NoError(t, in.Validate())
}

func TestFlagInputValidate_ExcessIDsForParentType(t *testing.T) {
	in := validCommentInput()
	in.ParentType = models.ParentTypePost
	in.CommentID = "c2"
	assert.Equal(t, "parent_type", missingField(t, in.Validate()))

	in = validCommentInput()
	in.ReplyID = "r3"
	assert.Equal(t, "parent_type", missingField(t, in.Validate()))
}

func TestFlagInputValidate_ContentTooLong(t *testing.T) {
	in := validCommentInput()
	in.Content = strings.Repeat("ш", validation.MaxContentLength+1)

	err := in.Validate()
	assert.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestFlagInputValidate_ExternalIDForbiddenChars(t *testing.T) {
	in := validCommentInput()
	in.PostID = "p1/p2"

	assert.Equal(t, "post_id", missingField(t, in.Validate()))
}

func TestFlagInputRecord(t *testing.T) {
	rec := validCommentInput().Record()

	assert.Equal(t, models.ParentTypeComment, rec.ParentType)
	assert.Equal(t, "p1", rec.PostID)
	require.NotNil(t, rec.CommentID)
	assert.Equal(t, "c2", *rec.CommentID)
	assert.Nil(t, rec.ReplyID)
	assert.False(t, rec.Reviewed)
	assert.False(t, rec.IsVisible)
}

func TestFlagInputRecord_PathRoundTrip(t *testing.T) {
	rec := validCommentInput().Record()

	path, err := ResolvePath(rec)
	require.NoError(t, err)
	assert.Equal(t, "Posts/p1/Comments/c2", path)
	assert.False(t, errors.Is(err, ErrInvalidHierarchy))
}

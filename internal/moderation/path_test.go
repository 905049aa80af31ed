package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/moderation-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestResolvePath_Post(t *testing.T) {
	path, err := ResolvePath(&models.FlaggedContent{
		ParentType: models.ParentTypePost,
		PostID:     "p1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Posts/p1", path)
}

func TestResolvePath_Comment(t *testing.T) {
	path, err := ResolvePath(&models.FlaggedContent{
		ParentType: models.ParentTypeComment,
		PostID:     "p1",
		CommentID:  strPtr("c2"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Posts/p1/Comments/c2", path)
}

func TestResolvePath_Reply(t *testing.T) {
	path, err := ResolvePath(&models.FlaggedContent{
		ParentType: models.ParentTypeReply,
		PostID:     "p1",
		CommentID:  strPtr("c2"),
		ReplyID:    strPtr("r3"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Posts/p1/Comments/c2/Replies/r3", path)
}

func TestResolvePath_EmptyPostID(t *testing.T) {
	_, err := ResolvePath(&models.FlaggedContent{ParentType: models.ParentTypePost})

	assert.ErrorIs(t, err, ErrInvalidHierarchy)
}

func TestResolvePath_CommentWithoutCommentID(t *testing.T) {
	_, err := ResolvePath(&models.FlaggedContent{
		ParentType: models.ParentTypeComment,
		PostID:     "p1",
	})

	assert.ErrorIs(t, err, ErrInvalidHierarchy)
}

func TestResolvePath_ReplyWithoutCommentID(t *testing.T) {
	// reply без comment_id — дыра в цепочке, путь построить нельзя.
	_, err := ResolvePath(&models.FlaggedContent{
		ParentType: models.ParentTypeReply,
		PostID:     "p1",
		ReplyID:    strPtr("r3"),
	})

	assert.ErrorIs(t, err, ErrInvalidHierarchy)
}

func TestResolvePath_PostWithExcessIDs(t *testing.T) {
	_, err := ResolvePath(&models.FlaggedContent{
		ParentType: models.ParentTypePost,
		PostID:     "p1",
		CommentID:  strPtr("c2"),
	})

	assert.ErrorIs(t, err, ErrInvalidHierarchy)
}

func TestResolvePath_UnknownParentType(t *testing.T) {
	_, err := ResolvePath(&models.FlaggedContent{
		ParentType: "story",
		PostID:     "p1",
	})

	assert.ErrorIs(t, err, ErrInvalidHierarchy)
}

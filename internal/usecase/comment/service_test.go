package comment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/domain/mocks"
	"github.com/Guyuepp/social-feed/internal/usecase/comment"
)

func mockComment(t *testing.T, id, ownerID string, likes int64) *domain.Comment {
	t.Helper()
	c, err := domain.NewComment(domain.CommentRecord{
		ID:        id,
		Body:      "original",
		User:      &domain.UserReference{ID: ownerID, Username: "owner"},
		PostID:    "p1",
		Likes:     likes,
		CreatedAt: 1,
		UpdatedAt: 1,
	})
	require.NoError(t, err)
	return c
}

func asBaseError(t *testing.T, err error) *domain.BaseError {
	t.Helper()
	var be *domain.BaseError
	require.True(t, errors.As(err, &be), "expected *domain.BaseError, got %T", err)
	return be
}

func TestGetCommentsByPostID(t *testing.T) {
	repo := new(mocks.CommentRepository)
	repo.On("GetByPostID", mock.Anything, "p1").Return([]*domain.Comment{mockComment(t, "c1", "u1", 0)}).Once()

	svc := comment.NewService(repo, new(mocks.UserRepository), new(mocks.LikeRecorder))
	list, err := svc.GetCommentsByPostID(context.TODO(), "p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StringID("c1"), list[0].ID)
}

func TestGetCommentByID(t *testing.T) {
	t.Run("raw error becomes fetch failed", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(nil, errors.New("dial tcp")).Once()

		_, err := comment.NewService(repo, nil, nil).GetCommentByID(context.TODO(), "c1")
		be := asBaseError(t, err)
		assert.Equal(t, domain.KindFetchFailed, be.Kind)
	})

	t.Run("not found is kept", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(nil, domain.NewNotFoundError(domain.ResourceComment, "c1")).Once()

		_, err := comment.NewService(repo, nil, nil).GetCommentByID(context.TODO(), "c1")
		assert.EqualError(t, err, "Comment with ID c1 not found")
	})
}

func TestCreateComment(t *testing.T) {
	current := domain.NewUser(domain.UserRecord{ID: "u1", Username: "bob"})

	t.Run("success", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetCurrent", mock.Anything).Return(current, nil).Once()
		repo := new(mocks.CommentRepository)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.ID() == "" && c.Body() == "hello" && c.PostID() == "p1" && c.User().ID == "u1"
		})).Return(mockComment(t, "c9", "u1", 0), nil).Once()

		dto, err := comment.NewService(repo, users, nil).CreateComment(context.TODO(), "p1", "hello", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.StringID("c9"), dto.ID)
		repo.AssertExpectations(t)
	})

	t.Run("invalid body never reaches the repository", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetCurrent", mock.Anything).Return(current, nil).Once()
		repo := new(mocks.CommentRepository)

		_, err := comment.NewService(repo, users, nil).CreateComment(context.TODO(), "p1", "", nil)
		be := asBaseError(t, err)
		assert.Equal(t, domain.KindValidation, be.Kind)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetCurrent", mock.Anything).Return(current, nil).Once()
		repo := new(mocks.CommentRepository)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil, domain.NewCreateFailedError(domain.ResourceComment)).Once()

		_, err := comment.NewService(repo, users, nil).CreateComment(context.TODO(), "p1", "hello", nil)
		assert.EqualError(t, err, "Failed to create comment")
	})

	t.Run("given author skips the current user lookup", func(t *testing.T) {
		users := new(mocks.UserRepository)
		repo := new(mocks.CommentRepository)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.User().ID == "u7" && c.User().Username == "carol"
		})).Return(mockComment(t, "c10", "u7", 0), nil).Once()

		author := &domain.UserReference{ID: "u7", Username: "carol"}
		dto, err := comment.NewService(repo, users, nil).CreateComment(context.TODO(), "p1", "hello", author)
		require.NoError(t, err)
		assert.Equal(t, domain.StringID("c10"), dto.ID)
		users.AssertNotCalled(t, "GetCurrent", mock.Anything)
	})
}

func TestUpdateComment(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(nil, domain.NewNotFoundError(domain.ResourceComment, "c1")).Once()

		_, err := comment.NewService(repo, nil, nil).UpdateComment(context.TODO(), "c1", "new", "u1")
		assert.Equal(t, domain.KindNotFound, asBaseError(t, err).Kind)
	})

	t.Run("unauthorized", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(mockComment(t, "c1", "u1", 0), nil).Once()

		_, err := comment.NewService(repo, nil, nil).UpdateComment(context.TODO(), "c1", "new", "u2")
		be := asBaseError(t, err)
		assert.Equal(t, domain.KindUnauthorized, be.Kind)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(mockComment(t, "c1", "u1", 0), nil).Once()
		repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.Body() == "new"
		})).Return(mockComment(t, "c1", "u1", 0), nil).Once()

		_, err := comment.NewService(repo, nil, nil).UpdateComment(context.TODO(), "c1", "new", "u1")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(mockComment(t, "c1", "u1", 0), nil).Once()
		repo.On("Save", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		_, err := comment.NewService(repo, nil, nil).UpdateComment(context.TODO(), "c1", "new", "u1")
		assert.Equal(t, domain.KindUpdateFailed, asBaseError(t, err).Kind)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(mockComment(t, "c1", "u1", 0), nil).Once()
		repo.On("Delete", mock.Anything, "c1").Return(true).Once()

		require.NoError(t, comment.NewService(repo, nil, nil).DeleteComment(context.TODO(), "c1", "u1"))
	})

	t.Run("delete failed", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(mockComment(t, "c1", "u1", 0), nil).Once()
		repo.On("Delete", mock.Anything, "c1").Return(false).Once()

		err := comment.NewService(repo, nil, nil).DeleteComment(context.TODO(), "c1", "u1")
		assert.Equal(t, domain.KindDeleteFailed, asBaseError(t, err).Kind)
	})

	t.Run("unauthorized", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(mockComment(t, "c1", "u1", 0), nil).Once()

		err := comment.NewService(repo, nil, nil).DeleteComment(context.TODO(), "c1", "u2")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestLikeComment(t *testing.T) {
	t.Run("like records and increments", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(mockComment(t, "c1", "u1", 2), nil).Once()
		repo.On("Like", mock.Anything, "c1", "u2").Return(true).Once()
		likes := new(mocks.LikeRecorder)
		likes.On("Send", mock.MatchedBy(func(l domain.UserLike) bool {
			return l.TargetType == domain.LikeTargetComment && l.TargetID == "c1" && l.UserID == "u2"
		}), domain.Like).Once()

		dto, err := comment.NewService(repo, nil, likes).LikeComment(context.TODO(), "c1", "u2")
		require.NoError(t, err)
		assert.Equal(t, int64(3), dto.Likes)
		likes.AssertExpectations(t)
	})

	t.Run("unlike at zero", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(mockComment(t, "c1", "u1", 0), nil).Once()
		repo.On("Unlike", mock.Anything, "c1", "u2").Return(true).Once()
		likes := new(mocks.LikeRecorder)
		likes.On("Send", mock.Anything, domain.Unlike).Once()

		dto, err := comment.NewService(repo, nil, likes).UnlikeComment(context.TODO(), "c1", "u2")
		require.NoError(t, err)
		assert.Equal(t, int64(0), dto.Likes)
	})

	t.Run("upstream refuses", func(t *testing.T) {
		repo := new(mocks.CommentRepository)
		repo.On("GetByID", mock.Anything, "c1").Return(mockComment(t, "c1", "u1", 0), nil).Once()
		repo.On("Like", mock.Anything, "c1", "u2").Return(false).Once()
		likes := new(mocks.LikeRecorder)

		_, err := comment.NewService(repo, nil, likes).LikeComment(context.TODO(), "c1", "u2")
		assert.Equal(t, domain.KindUpdateFailed, asBaseError(t, err).Kind)
		likes.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

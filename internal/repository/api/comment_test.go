package api_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/domain/mocks"
	"github.com/Guyuepp/social-feed/internal/repository/api"
)

var bob = &domain.UserReference{ID: "u1", Username: "bob"}

func commentDTO(id string) domain.CommentDTO {
	return domain.CommentDTO{
		ID:        domain.StringID(id),
		Body:      "body " + id,
		User:      bob,
		PostID:    "p1",
		Likes:     1,
		CreatedAt: 10,
		UpdatedAt: 10,
	}
}

func TestCommentGetByPostID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		adapter := new(mocks.CommentAdapter)
		adapter.On("GetByPostID", mock.Anything, "p1").Return([]domain.CommentDTO{commentDTO("c1"), commentDTO("c2")}, nil).Once()

		list := api.NewCommentRepository(adapter).GetByPostID(context.TODO(), "p1")
		require.Len(t, list, 2)
		assert.Equal(t, "c2", list[1].ID())
		adapter.AssertExpectations(t)
	})

	t.Run("absent data", func(t *testing.T) {
		adapter := new(mocks.CommentAdapter)
		adapter.On("GetByPostID", mock.Anything, "p1").Return(nil, nil).Once()

		list := api.NewCommentRepository(adapter).GetByPostID(context.TODO(), "p1")
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("adapter error is swallowed", func(t *testing.T) {
		adapter := new(mocks.CommentAdapter)
		adapter.On("GetByPostID", mock.Anything, "p1").Return(nil, errors.New("network down")).Once()

		list := api.NewCommentRepository(adapter).GetByPostID(context.TODO(), "p1")
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("invalid element is swallowed", func(t *testing.T) {
		bad := commentDTO("c3")
		bad.Body = ""
		adapter := new(mocks.CommentAdapter)
		adapter.On("GetByPostID", mock.Anything, "p1").Return([]domain.CommentDTO{commentDTO("c1"), bad}, nil).Once()

		assert.Empty(t, api.NewCommentRepository(adapter).GetByPostID(context.TODO(), "p1"))
	})
}

func TestCommentGetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		adapter := new(mocks.CommentAdapter)
		adapter.On("GetByID", mock.Anything, "missing").Return(nil, nil).Once()

		_, err := api.NewCommentRepository(adapter).GetByID(context.TODO(), "missing")
		require.Error(t, err)
		assert.Equal(t, "Comment with ID missing not found", err.Error())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("adapter error is returned unchanged", func(t *testing.T) {
		boom := errors.New("timeout")
		adapter := new(mocks.CommentAdapter)
		adapter.On("GetByID", mock.Anything, "c1").Return(nil, boom).Once()

		_, err := api.NewCommentRepository(adapter).GetByID(context.TODO(), "c1")
		assert.Same(t, boom, err)
	})

	t.Run("success", func(t *testing.T) {
		dto := commentDTO("c1")
		adapter := new(mocks.CommentAdapter)
		adapter.On("GetByID", mock.Anything, "c1").Return(&dto, nil).Once()

		c, err := api.NewCommentRepository(adapter).GetByID(context.TODO(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "body c1", c.Body())
	})
}

func TestCommentSave(t *testing.T) {
	newComment, err := domain.NewComment(domain.CommentRecord{Body: "fresh", User: bob, PostID: "p1"})
	require.NoError(t, err)
	existing, err := domain.NewComment(domain.CommentRecord{ID: "c1", Body: "edited", User: bob, PostID: "p1"})
	require.NoError(t, err)

	t.Run("empty id creates", func(t *testing.T) {
		created := commentDTO("c9")
		adapter := new(mocks.CommentAdapter)
		adapter.On("Create", mock.Anything, domain.CreateCommentRequest{Body: "fresh", PostID: "p1", UserID: "u1"}).Return(&created, nil).Once()

		c, err := api.NewCommentRepository(adapter).Save(context.TODO(), newComment)
		require.NoError(t, err)
		assert.Equal(t, "c9", c.ID())
		adapter.AssertExpectations(t)
	})

	t.Run("id updates", func(t *testing.T) {
		updated := commentDTO("c1")
		adapter := new(mocks.CommentAdapter)
		adapter.On("Update", mock.Anything, "c1", domain.UpdateCommentRequest{Body: "edited"}).Return(&updated, nil).Once()

		_, err := api.NewCommentRepository(adapter).Save(context.TODO(), existing)
		require.NoError(t, err)
		adapter.AssertExpectations(t)
	})

	t.Run("create failure drops the cause", func(t *testing.T) {
		adapter := new(mocks.CommentAdapter)
		adapter.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("502")).Once()

		_, err := api.NewCommentRepository(adapter).Create(context.TODO(), newComment)
		require.Error(t, err)
		assert.Equal(t, "Failed to create comment", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("update without data", func(t *testing.T) {
		adapter := new(mocks.CommentAdapter)
		adapter.On("Update", mock.Anything, "c1", mock.Anything).Return(nil, nil).Once()

		_, err := api.NewCommentRepository(adapter).Update(context.TODO(), existing)
		assert.EqualError(t, err, "Failed to update comment")
	})
}

func TestCommentBooleanOperations(t *testing.T) {
	adapter := new(mocks.CommentAdapter)
	adapter.On("Delete", mock.Anything, "c1").Return(true, nil).Once()
	adapter.On("Delete", mock.Anything, "c2").Return(false, errors.New("boom")).Once()
	adapter.On("Like", mock.Anything, "c1", "u2").Return(true, nil).Once()
	adapter.On("Unlike", mock.Anything, "c1", "u2").Return(false, errors.New("boom")).Once()

	repo := api.NewCommentRepository(adapter)
	assert.True(t, repo.Delete(context.TODO(), "c1"))
	assert.False(t, repo.Delete(context.TODO(), "c2"))
	assert.True(t, repo.Like(context.TODO(), "c1", "u2"))
	assert.False(t, repo.Unlike(context.TODO(), "c1", "u2"))
	adapter.AssertExpectations(t)
}

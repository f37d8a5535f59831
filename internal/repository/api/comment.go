package api

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/factory"
	"github.com/Guyuepp/social-feed/internal/mapper"
)

type commentRepository struct {
	adapter domain.CommentAdapter
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(adapter domain.CommentAdapter) *commentRepository {
	return &commentRepository{adapter: adapter}
}

// GetByPostID 列表读取失败时返回空列表
func (r *commentRepository) GetByPostID(ctx context.Context, postID string) []*domain.Comment {
	dtos, err := r.adapter.GetByPostID(ctx, postID)
	if err != nil {
		logrus.Errorf("failed to fetch comments for post %s: %v", postID, err)
		return []*domain.Comment{}
	}
	comments, err := mapper.CommentsToDomain(dtos)
	if err != nil {
		logrus.Errorf("failed to map comments for post %s: %v", postID, err)
		return []*domain.Comment{}
	}
	return comments
}

// GetByID passes adapter errors through unchanged
func (r *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	dto, err := r.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, domain.NewNotFoundError(domain.ResourceComment, id)
	}
	return mapper.CommentToDomain(*dto)
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	dto, err := r.adapter.Create(ctx, domain.CreateCommentRequest{
		Body:   c.Body(),
		PostID: c.PostID(),
		UserID: c.User().ID,
	})
	if err != nil {
		logrus.Errorf("failed to create comment on post %s: %v", c.PostID(), err)
		return nil, domain.NewCreateFailedError(domain.ResourceComment)
	}
	if dto == nil {
		return nil, domain.NewCreateFailedError(domain.ResourceComment)
	}
	return factory.CreateCommentFromDTO(*dto)
}

func (r *commentRepository) Update(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	dto, err := r.adapter.Update(ctx, c.ID(), domain.UpdateCommentRequest{Body: c.Body()})
	if err != nil {
		logrus.Errorf("failed to update comment %s: %v", c.ID(), err)
		return nil, domain.NewUpdateFailedError(domain.ResourceComment, c.ID())
	}
	if dto == nil {
		return nil, domain.NewUpdateFailedError(domain.ResourceComment, c.ID())
	}
	return factory.CreateCommentFromDTO(*dto)
}

func (r *commentRepository) Save(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if c.ID() == "" {
		return r.Create(ctx, c)
	}
	return r.Update(ctx, c)
}

func (r *commentRepository) Delete(ctx context.Context, id string) bool {
	ok, err := r.adapter.Delete(ctx, id)
	if err != nil {
		logrus.Errorf("failed to delete comment %s: %v", id, err)
		return false
	}
	return ok
}

func (r *commentRepository) Like(ctx context.Context, id, userID string) bool {
	ok, err := r.adapter.Like(ctx, id, userID)
	if err != nil {
		logrus.Errorf("failed to like comment %s: %v", id, err)
		return false
	}
	return ok
}

func (r *commentRepository) Unlike(ctx context.Context, id, userID string) bool {
	ok, err := r.adapter.Unlike(ctx, id, userID)
	if err != nil {
		logrus.Errorf("failed to unlike comment %s: %v", id, err)
		return false
	}
	return ok
}

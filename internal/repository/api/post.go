package api

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/factory"
	"github.com/Guyuepp/social-feed/internal/mapper"
)

type postRepository struct {
	adapter domain.PostAdapter
}

var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(adapter domain.PostAdapter) *postRepository {
	return &postRepository{adapter: adapter}
}

func (r *postRepository) GetAll(ctx context.Context, opts domain.ListOptions) []*domain.Post {
	dtos, err := r.adapter.GetAll(ctx, opts)
	if err != nil {
		logrus.Errorf("failed to fetch posts (limit=%d skip=%d): %v", opts.Limit, opts.Skip, err)
		return []*domain.Post{}
	}
	return mapper.PostsToDomain(dtos)
}

func (r *postRepository) Search(ctx context.Context, query string) []*domain.Post {
	dtos, err := r.adapter.Search(ctx, query)
	if err != nil {
		logrus.Errorf("failed to search posts for %q: %v", query, err)
		return []*domain.Post{}
	}
	return mapper.PostsToDomain(dtos)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	dto, err := r.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, domain.NewNotFoundError(domain.ResourcePost, id)
	}
	return mapper.PostToDomain(*dto), nil
}

// Create returns nil when the post could not be created
func (r *postRepository) Create(ctx context.Context, p *domain.Post) *domain.Post {
	dto, err := r.adapter.Create(ctx, domain.CreatePostRequest{
		Title:  p.Title(),
		Body:   p.Body(),
		UserID: p.User().ID,
	})
	if err != nil {
		logrus.Errorf("failed to create post: %v", err)
		return nil
	}
	if dto == nil {
		return nil
	}
	return factory.CreatePostFromDTO(*dto)
}

// Update returns nil when the post could not be updated
func (r *postRepository) Update(ctx context.Context, p *domain.Post) *domain.Post {
	dto, err := r.adapter.Update(ctx, p.ID(), domain.UpdatePostRequest{
		Title: p.Title(),
		Body:  p.Body(),
	})
	if err != nil {
		logrus.Errorf("failed to update post %s: %v", p.ID(), err)
		return nil
	}
	if dto == nil {
		return nil
	}
	return factory.CreatePostFromDTO(*dto)
}

func (r *postRepository) Save(ctx context.Context, p *domain.Post) *domain.Post {
	if p.ID() == "" {
		return r.Create(ctx, p)
	}
	return r.Update(ctx, p)
}

func (r *postRepository) Delete(ctx context.Context, id string) bool {
	ok, err := r.adapter.Delete(ctx, id)
	if err != nil {
		logrus.Errorf("failed to delete post %s: %v", id, err)
		return false
	}
	return ok
}

func (r *postRepository) Like(ctx context.Context, id, userID string) bool {
	ok, err := r.adapter.Like(ctx, id, userID)
	if err != nil {
		logrus.Errorf("failed to like post %s: %v", id, err)
		return false
	}
	return ok
}

func (r *postRepository) Unlike(ctx context.Context, id, userID string) bool {
	ok, err := r.adapter.Unlike(ctx, id, userID)
	if err != nil {
		logrus.Errorf("failed to unlike post %s: %v", id, err)
		return false
	}
	return ok
}

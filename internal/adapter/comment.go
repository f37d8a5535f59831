package adapter

import (
	"context"
	"net/url"

	"github.com/Guyuepp/social-feed/domain"
)

type commentAdapter struct {
	client APIClient
}

var _ domain.CommentAdapter = (*commentAdapter)(nil)

func NewCommentAdapter(client APIClient) *commentAdapter {
	return &commentAdapter{client: client}
}

func (a *commentAdapter) GetByPostID(ctx context.Context, postID string) ([]domain.CommentDTO, error) {
	list, err := decode[domain.CommentList](a.client.Get(ctx, "/posts/"+url.PathEscape(postID)+"/comments", nil))
	if err != nil || list == nil {
		return nil, err
	}
	return list.Comments, nil
}

func (a *commentAdapter) GetByID(ctx context.Context, id string) (*domain.CommentDTO, error) {
	return decode[domain.CommentDTO](a.client.Get(ctx, commentPath(id), nil))
}

func (a *commentAdapter) Create(ctx context.Context, in domain.CreateCommentRequest) (*domain.CommentDTO, error) {
	return decode[domain.CommentDTO](a.client.Post(ctx, "/comments/add", in))
}

func (a *commentAdapter) Update(ctx context.Context, id string, in domain.UpdateCommentRequest) (*domain.CommentDTO, error) {
	return decode[domain.CommentDTO](a.client.Put(ctx, commentPath(id), in))
}

func (a *commentAdapter) Delete(ctx context.Context, id string) (bool, error) {
	return succeeded(a.client.Delete(ctx, commentPath(id)))
}

func (a *commentAdapter) Like(ctx context.Context, id, userID string) (bool, error) {
	return succeeded(a.client.Patch(ctx, commentPath(id)+"/like", domain.LikeRequest{UserID: userID}))
}

func (a *commentAdapter) Unlike(ctx context.Context, id, userID string) (bool, error) {
	return succeeded(a.client.Patch(ctx, commentPath(id)+"/unlike", domain.LikeRequest{UserID: userID}))
}

func commentPath(id string) string {
	return "/comments/" + url.PathEscape(id)
}

package adapter

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Guyuepp/social-feed/domain"
)

type postAdapter struct {
	client APIClient
}

var _ domain.PostAdapter = (*postAdapter)(nil)

func NewPostAdapter(client APIClient) *postAdapter {
	return &postAdapter{client: client}
}

func (a *postAdapter) GetAll(ctx context.Context, opts domain.ListOptions) ([]domain.PostDTO, error) {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Skip > 0 {
		query.Set("skip", strconv.Itoa(opts.Skip))
	}
	list, err := decode[domain.PostList](a.client.Get(ctx, "/posts", query))
	if err != nil || list == nil {
		return nil, err
	}
	return list.Posts, nil
}

func (a *postAdapter) Search(ctx context.Context, q string) ([]domain.PostDTO, error) {
	list, err := decode[domain.PostList](a.client.Get(ctx, "/posts/search", url.Values{"q": {q}}))
	if err != nil || list == nil {
		return nil, err
	}
	return list.Posts, nil
}

func (a *postAdapter) GetByID(ctx context.Context, id string) (*domain.PostDTO, error) {
	return decode[domain.PostDTO](a.client.Get(ctx, postPath(id), nil))
}

func (a *postAdapter) Create(ctx context.Context, in domain.CreatePostRequest) (*domain.PostDTO, error) {
	return decode[domain.PostDTO](a.client.Post(ctx, "/posts/add", in))
}

func (a *postAdapter) Update(ctx context.Context, id string, in domain.UpdatePostRequest) (*domain.PostDTO, error) {
	return decode[domain.PostDTO](a.client.Put(ctx, postPath(id), in))
}

func (a *postAdapter) Delete(ctx context.Context, id string) (bool, error) {
	return succeeded(a.client.Delete(ctx, postPath(id)))
}

func (a *postAdapter) Like(ctx context.Context, id, userID string) (bool, error) {
	return succeeded(a.client.Patch(ctx, postPath(id)+"/like", domain.LikeRequest{UserID: userID}))
}

func (a *postAdapter) Unlike(ctx context.Context, id, userID string) (bool, error) {
	return succeeded(a.client.Patch(ctx, postPath(id)+"/unlike", domain.LikeRequest{UserID: userID}))
}

func postPath(id string) string {
	return "/posts/" + url.PathEscape(id)
}

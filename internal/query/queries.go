package query

import (
	"context"
	"fmt"

	"github.com/Guyuepp/social-feed/domain"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is what a read hands to the HTTP layer. Err is always a *domain.BaseError.
type Result[T any] struct {
	Data   T
	Status Status
	Err    *domain.BaseError
}

func (r Result[T]) IsSuccess() bool { return r.Status == StatusSuccess }
func (r Result[T]) IsError() bool { return r.Status == StatusError }

func resultOf[T any](data T, err error, resource string) Result[T] {
	if err != nil {
		return Result[T]{
			Status: StatusError,
			Err:    domain.AsBaseError(err, domain.NewFetchFailedError(resource, nil)),
		}
	}
	return Result[T]{Data: data, Status: StatusSuccess}
}

func postsListKey(opts domain.ListOptions) string {
	return fmt.Sprintf("posts:list:%d:%d", opts.Limit, opts.Skip)
}

func postsSearchKey(q string) string { return "posts:search:" + q }
func postKey(id string) string { return "post:" + id + ":" }
func commentsKey(postID string) string { return "comments:" + postID + ":" }

type Queries struct {
	client   *Client
	posts    domain.PostService
	comments domain.CommentService
}

func NewQueries(client *Client, posts domain.PostService, comments domain.CommentService) *Queries {
	return &Queries{
		client:   client,
		posts:    posts,
		comments: comments,
	}
}

func (q *Queries) CommentsByPostID(ctx context.Context, postID string) Result[[]domain.CommentDTO] {
	data, err := Fetch(ctx, q.client, commentsKey(postID), func(ctx context.Context) ([]domain.CommentDTO, error) {
		return q.comments.GetCommentsByPostID(ctx, postID)
	})
	return resultOf(data, err, "Comments")
}

func (q *Queries) Posts(ctx context.Context, opts domain.ListOptions) Result[[]domain.PostDTO] {
	data, err := Fetch(ctx, q.client, postsListKey(opts), func(ctx context.Context) ([]domain.PostDTO, error) {
		return q.posts.GetPosts(ctx, opts)
	})
	return resultOf(data, err, "Posts")
}

func (q *Queries) SearchPosts(ctx context.Context, query string) Result[[]domain.PostDTO] {
	data, err := Fetch(ctx, q.client, postsSearchKey(query), func(ctx context.Context) ([]domain.PostDTO, error) {
		return q.posts.SearchPosts(ctx, query)
	})
	return resultOf(data, err, "Posts")
}

// PostByID stays idle without fetching when enabled is false
func (q *Queries) PostByID(ctx context.Context, id string, enabled bool) Result[*domain.PostWithComments] {
	if !enabled {
		return Result[*domain.PostWithComments]{Status: StatusIdle}
	}
	data, err := Fetch(ctx, q.client, postKey(id), func(ctx context.Context) (*domain.PostWithComments, error) {
		return q.posts.GetPostByID(ctx, id)
	})
	return resultOf(data, err, domain.ResourcePost)
}

// InvalidatePost drops the post detail and every post list
func (q *Queries) InvalidatePost(ctx context.Context, id string) {
	q.client.Invalidate(ctx, postKey(id))
	q.client.Invalidate(ctx, "posts:")
}

// InvalidateComments drops the comments of a post and the post detail embedding them
func (q *Queries) InvalidateComments(ctx context.Context, postID string) {
	q.client.Invalidate(ctx, commentsKey(postID))
	q.client.Invalidate(ctx, postKey(postID))
}

// InvalidateAllComments is for comment mutations whose post is unknown
func (q *Queries) InvalidateAllComments(ctx context.Context) {
	q.client.Invalidate(ctx, "comments:")
	q.client.Invalidate(ctx, "post:")
	q.client.Invalidate(ctx, "posts:")
}

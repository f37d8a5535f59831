package domain

import (
	"context"

	"github.com/sirupsen/logrus"
)

const ResourcePost = "Post"

// Post domain model. Unlike Comment it carries no validation.
type Post struct {
	id            string
	user          UserReference
	title         string
	body          string
	image         string
	likes         int64
	totalComments int64
	createdAt     int64
	updatedAt     int64
}

func NewPost(r PostRecord) *Post {
	return &Post{
		id:            r.ID,
		user:          r.User,
		title:         r.Title,
		body:          r.Body,
		image:         r.Image,
		likes:         r.Likes,
		totalComments: r.TotalComments,
		createdAt:     r.CreatedAt,
		updatedAt:     r.UpdatedAt,
	}
}

func (p *Post) ID() string { return p.id }
func (p *Post) User() UserReference { return p.user }
func (p *Post) Title() string { return p.title }
func (p *Post) Body() string { return p.body }
func (p *Post) Image() string { return p.image }
func (p *Post) Likes() int64 { return p.likes }
func (p *Post) TotalComments() int64 { return p.totalComments }
func (p *Post) CreatedAt() int64 { return p.createdAt }
func (p *Post) UpdatedAt() int64 { return p.updatedAt }

func (p *Post) UpdateTitle(title string) {
	p.title = title
	p.updatedAt = NowMillis()
}

func (p *Post) UpdateBody(body string) {
	p.body = body
	p.updatedAt = NowMillis()
}

// Like and Unlike leave updatedAt alone
func (p *Post) Like(userID string) {
	logrus.WithFields(logrus.Fields{
		"post_id": p.id,
		"user_id": userID,
	}).Info("post liked")
	p.likes++
}

func (p *Post) Unlike(userID string) {
	logrus.WithFields(logrus.Fields{
		"post_id": p.id,
		"user_id": userID,
	}).Info("post unliked")
	if p.likes > 0 {
		p.likes--
	}
}

// ListOptions is the paging window for post lists
type ListOptions struct {
	Limit int
	Skip  int
}

type PostAdapter interface {
	GetAll(ctx context.Context, opts ListOptions) ([]PostDTO, error)
	Search(ctx context.Context, query string) ([]PostDTO, error)
	GetByID(ctx context.Context, id string) (*PostDTO, error)
	Create(ctx context.Context, in CreatePostRequest) (*PostDTO, error)
	Update(ctx context.Context, id string, in UpdatePostRequest) (*PostDTO, error)
	Delete(ctx context.Context, id string) (bool, error)
	Like(ctx context.Context, id, userID string) (bool, error)
	Unlike(ctx context.Context, id, userID string) (bool, error)
}

// PostRepository returns nil from Create, Update and Save when the upstream call fails
type PostRepository interface {
	GetAll(ctx context.Context, opts ListOptions) []*Post
	Search(ctx context.Context, query string) []*Post
	GetByID(ctx context.Context, id string) (*Post, error)
	Create(ctx context.Context, p *Post) *Post
	Update(ctx context.Context, p *Post) *Post
	Save(ctx context.Context, p *Post) *Post
	Delete(ctx context.Context, id string) bool
	Like(ctx context.Context, id, userID string) bool
	Unlike(ctx context.Context, id, userID string) bool
}

type PostService interface {
	GetPosts(ctx context.Context, opts ListOptions) ([]PostDTO, error)
	SearchPosts(ctx context.Context, query string) ([]PostDTO, error)
	// GetPostByID loads the post and then its comments
	GetPostByID(ctx context.Context, id string) (*PostWithComments, error)
	// CreatePost resolves the current user when author is nil
	CreatePost(ctx context.Context, title, body string, author *UserReference) (*PostDTO, error)
	UpdatePost(ctx context.Context, id string, in UpdatePostRequest, actingUserID string) (*PostDTO, error)
	DeletePost(ctx context.Context, id, actingUserID string) error
	LikePost(ctx context.Context, id, userID string) (*PostDTO, error)
	UnlikePost(ctx context.Context, id, userID string) (*PostDTO, error)
}

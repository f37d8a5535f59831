package domain

import (
	"context"

	"github.com/sirupsen/logrus"
)

const ResourceComment = "Comment"

// Comment domain model
type Comment struct {
	id        string
	body      CommentBody
	user      UserReferenceVO
	postID    string
	likes     int64
	createdAt int64
	updatedAt int64
}

// NewComment validates the body and the author before building the entity
func NewComment(r CommentRecord) (*Comment, error) {
	body, err := NewCommentBody(r.Body)
	if err != nil {
		return nil, err
	}
	user, err := NewUserReferenceVO(r.User)
	if err != nil {
		return nil, err
	}
	return &Comment{
		id:        r.ID,
		body:      body,
		user:      user,
		postID:    r.PostID,
		likes:     r.Likes,
		createdAt: r.CreatedAt,
		updatedAt: r.UpdatedAt,
	}, nil
}

func (c *Comment) ID() string { return c.id }
func (c *Comment) Body() string { return c.body.Text() }
func (c *Comment) PostID() string { return c.postID }
func (c *Comment) Likes() int64 { return c.likes }
func (c *Comment) CreatedAt() int64 { return c.createdAt }
func (c *Comment) UpdatedAt() int64 { return c.updatedAt }

// User returns a copy of the author, never the live value object
func (c *Comment) User() UserReference {
	return c.user.ToDTO()
}

// UpdateBody replaces the body; on failure the comment is left untouched
func (c *Comment) UpdateBody(text string) error {
	body, err := NewCommentBody(text)
	if err != nil {
		return err
	}
	c.body = body
	c.updatedAt = NowMillis()
	return nil
}

func (c *Comment) Like(userID string) {
	logrus.WithFields(logrus.Fields{
		"comment_id": c.id,
		"user_id":    userID,
	}).Info("comment liked")
	c.likes++
}

// Unlike never drives likes below zero
func (c *Comment) Unlike(userID string) {
	logrus.WithFields(logrus.Fields{
		"comment_id": c.id,
		"user_id":    userID,
	}).Info("comment unliked")
	if c.likes > 0 {
		c.likes--
	}
}

// CommentAdapter maps every comment operation to one upstream endpoint.
// A nil result with a nil error means the upstream answered without data.
type CommentAdapter interface {
	GetByPostID(ctx context.Context, postID string) ([]CommentDTO, error)
	GetByID(ctx context.Context, id string) (*CommentDTO, error)
	Create(ctx context.Context, in CreateCommentRequest) (*CommentDTO, error)
	Update(ctx context.Context, id string, in UpdateCommentRequest) (*CommentDTO, error)
	Delete(ctx context.Context, id string) (bool, error)
	Like(ctx context.Context, id, userID string) (bool, error)
	Unlike(ctx context.Context, id, userID string) (bool, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// GetByPostID never fails, errors are logged and yield an empty list
	GetByPostID(ctx context.Context, postID string) []*Comment
	GetByID(ctx context.Context, id string) (*Comment, error)
	Create(ctx context.Context, c *Comment) (*Comment, error)
	Update(ctx context.Context, c *Comment) (*Comment, error)
	// Save creates when the id is empty and updates otherwise
	Save(ctx context.Context, c *Comment) (*Comment, error)
	Delete(ctx context.Context, id string) bool
	Like(ctx context.Context, id, userID string) bool
	Unlike(ctx context.Context, id, userID string) bool
}

// CommentService 业务逻辑接口, every error it returns is a *BaseError
type CommentService interface {
	GetCommentsByPostID(ctx context.Context, postID string) ([]CommentDTO, error)
	GetCommentByID(ctx context.Context, id string) (*CommentDTO, error)
	CreateComment(ctx context.Context, postID, body string, author *UserReference) (*CommentDTO, error)
	UpdateComment(ctx context.Context, id, body, actingUserID string) (*CommentDTO, error)
	DeleteComment(ctx context.Context, id, actingUserID string) error
	LikeComment(ctx context.Context, id, userID string) (*CommentDTO, error)
	UnlikeComment(ctx context.Context, id, userID string) (*CommentDTO, error)
}

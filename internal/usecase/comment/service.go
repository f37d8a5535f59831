package comment

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/factory"
	"github.com/Guyuepp/social-feed/internal/mapper"
)

type service struct {
	commentRepo domain.CommentRepository
	userRepo    domain.UserRepository
	likes       domain.LikeRecorder
}

var _ domain.CommentService = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, userRepo domain.UserRepository, likes domain.LikeRecorder) domain.CommentService {
	return &service{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		likes:       likes,
	}
}

func (s *service) GetCommentsByPostID(ctx context.Context, postID string) ([]domain.CommentDTO, error) {
	comments := s.commentRepo.GetByPostID(ctx, postID)
	return mapper.CommentsToDTO(comments), nil
}

func (s *service) GetCommentByID(ctx context.Context, id string) (*domain.CommentDTO, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.CommentToDTO(c)
	return &dto, nil
}

func (s *service) CreateComment(ctx context.Context, postID, body string, author *domain.UserReference) (*domain.CommentDTO, error) {
	user, err := s.resolveAuthor(ctx, author)
	if err != nil {
		logrus.Errorf("CreateComment: resolve current user: %v", err)
		return nil, domain.AsBaseError(err, domain.NewCreateFailedError(domain.ResourceComment))
	}

	c, err := factory.CreateNewComment(body, user, postID)
	if err != nil {
		logrus.Warnf("CreateComment: invalid comment on post %s: %v", postID, err)
		return nil, domain.AsBaseError(err, domain.NewCreateFailedError(domain.ResourceComment))
	}

	created, err := s.commentRepo.Save(ctx, c)
	if err != nil {
		logrus.Errorf("CreateComment: post %s: %v", postID, err)
		return nil, domain.AsBaseError(err, domain.NewCreateFailedError(domain.ResourceComment))
	}

	dto := mapper.CommentToDTO(created)
	return &dto, nil
}

func (s *service) UpdateComment(ctx context.Context, id, body, actingUserID string) (*domain.CommentDTO, error) {
	existing, err := s.loadOwned(ctx, id, actingUserID, "update")
	if err != nil {
		return nil, err
	}

	if err := existing.UpdateBody(body); err != nil {
		logrus.Warnf("UpdateComment: invalid body for comment %s: %v", id, err)
		return nil, domain.AsBaseError(err, domain.NewUpdateFailedError(domain.ResourceComment, id))
	}

	updated, err := s.commentRepo.Save(ctx, existing)
	if err != nil || updated == nil {
		logrus.Errorf("UpdateComment: comment %s: %v", id, err)
		return nil, domain.NewUpdateFailedError(domain.ResourceComment, id).WithCause(err)
	}

	dto := mapper.CommentToDTO(updated)
	return &dto, nil
}

func (s *service) DeleteComment(ctx context.Context, id, actingUserID string) error {
	if _, err := s.loadOwned(ctx, id, actingUserID, "delete"); err != nil {
		return err
	}

	if !s.commentRepo.Delete(ctx, id) {
		err := domain.NewDeleteFailedError(domain.ResourceComment, id)
		logrus.Errorf("DeleteComment: %v", err)
		return err
	}
	return nil
}

func (s *service) LikeComment(ctx context.Context, id, userID string) (*domain.CommentDTO, error) {
	return s.toggleLike(ctx, id, userID, domain.Like)
}

func (s *service) UnlikeComment(ctx context.Context, id, userID string) (*domain.CommentDTO, error) {
	return s.toggleLike(ctx, id, userID, domain.Unlike)
}

func (s *service) toggleLike(ctx context.Context, id, userID string, action domain.LikeAction) (*domain.CommentDTO, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var ok bool
	if action == domain.Like {
		ok = s.commentRepo.Like(ctx, id, userID)
	} else {
		ok = s.commentRepo.Unlike(ctx, id, userID)
	}
	if !ok {
		err := domain.NewUpdateFailedError(domain.ResourceComment, id)
		logrus.Errorf("toggle like %s on comment %s by %s failed", action, id, userID)
		return nil, err
	}

	if action == domain.Like {
		c.Like(userID)
	} else {
		c.Unlike(userID)
	}
	s.likes.Send(domain.UserLike{
		TargetType: domain.LikeTargetComment,
		TargetID:   id,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}, action)

	dto := mapper.CommentToDTO(c)
	return &dto, nil
}

// resolveAuthor 已认证的请求直接带上作者, 否则查询当前用户
func (s *service) resolveAuthor(ctx context.Context, author *domain.UserReference) (domain.UserReference, error) {
	if author != nil {
		return *author, nil
	}
	user, err := s.userRepo.GetCurrent(ctx)
	if err != nil {
		return domain.UserReference{}, err
	}
	return user.Reference(), nil
}

// load fetches a comment and normalizes every failure to a BaseError
func (s *service) load(ctx context.Context, id string) (*domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		logrus.Errorf("load comment %s: %v", id, err)
		return nil, domain.AsBaseError(err, domain.NewFetchFailedError(domain.ResourceComment, nil))
	}
	if c == nil {
		return nil, domain.NewNotFoundError(domain.ResourceComment, id)
	}
	return c, nil
}

func (s *service) loadOwned(ctx context.Context, id, actingUserID, action string) (*domain.Comment, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.User().ID != actingUserID {
		err := domain.NewUnauthorizedError(action, domain.ResourceComment, id)
		logrus.Warnf("user %s tried to %s comment %s owned by %s", actingUserID, action, id, c.User().ID)
		return nil, err
	}
	return c, nil
}

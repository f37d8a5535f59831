package post

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/factory"
	"github.com/Guyuepp/social-feed/internal/mapper"
)

type service struct {
	postRepo    domain.PostRepository
	commentRepo domain.CommentRepository
	userRepo    domain.UserRepository
	likes       domain.LikeRecorder
}

var _ domain.PostService = (*service)(nil)

func NewService(postRepo domain.PostRepository, commentRepo domain.CommentRepository, userRepo domain.UserRepository, likes domain.LikeRecorder) domain.PostService {
	return &service{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		likes:       likes,
	}
}

func (s *service) GetPosts(ctx context.Context, opts domain.ListOptions) ([]domain.PostDTO, error) {
	return mapper.PostsToDTO(s.postRepo.GetAll(ctx, opts)), nil
}

func (s *service) SearchPosts(ctx context.Context, query string) ([]domain.PostDTO, error) {
	return mapper.PostsToDTO(s.postRepo.Search(ctx, query)), nil
}

// GetPostByID 先取文章, 再取评论
func (s *service) GetPostByID(ctx context.Context, id string) (*domain.PostWithComments, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	comments := s.commentRepo.GetByPostID(ctx, id)

	return &domain.PostWithComments{
		PostDTO:  mapper.PostToDTO(p),
		Comments: mapper.CommentsToDTO(comments),
	}, nil
}

func (s *service) CreatePost(ctx context.Context, title, body string, author *domain.UserReference) (*domain.PostDTO, error) {
	if author == nil {
		user, err := s.userRepo.GetCurrent(ctx)
		if err != nil {
			logrus.Errorf("CreatePost: resolve current user: %v", err)
			return nil, domain.AsBaseError(err, domain.NewCreateFailedError(domain.ResourcePost))
		}
		ref := user.Reference()
		author = &ref
	}

	created := s.postRepo.Save(ctx, factory.CreateNewPost(title, body, "", *author))
	if created == nil {
		err := domain.NewCreateFailedError(domain.ResourcePost)
		logrus.Errorf("CreatePost: %v", err)
		return nil, err
	}

	dto := mapper.PostToDTO(created)
	return &dto, nil
}

func (s *service) UpdatePost(ctx context.Context, id string, in domain.UpdatePostRequest, actingUserID string) (*domain.PostDTO, error) {
	existing, err := s.loadOwned(ctx, id, actingUserID, "update")
	if err != nil {
		return nil, err
	}

	existing.UpdateTitle(in.Title)
	existing.UpdateBody(in.Body)

	updated := s.postRepo.Save(ctx, existing)
	if updated == nil {
		err := domain.NewUpdateFailedError(domain.ResourcePost, id)
		logrus.Errorf("UpdatePost: %v", err)
		return nil, err
	}

	dto := mapper.PostToDTO(updated)
	return &dto, nil
}

func (s *service) DeletePost(ctx context.Context, id, actingUserID string) error {
	if _, err := s.loadOwned(ctx, id, actingUserID, "delete"); err != nil {
		return err
	}

	if !s.postRepo.Delete(ctx, id) {
		err := domain.NewDeleteFailedError(domain.ResourcePost, id)
		logrus.Errorf("DeletePost: %v", err)
		return err
	}
	return nil
}

func (s *service) LikePost(ctx context.Context, id, userID string) (*domain.PostDTO, error) {
	return s.toggleLike(ctx, id, userID, domain.Like)
}

func (s *service) UnlikePost(ctx context.Context, id, userID string) (*domain.PostDTO, error) {
	return s.toggleLike(ctx, id, userID, domain.Unlike)
}

func (s *service) toggleLike(ctx context.Context, id, userID string, action domain.LikeAction) (*domain.PostDTO, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var ok bool
	switch action {
	case domain.Like:
		ok = s.postRepo.Like(ctx, id, userID)
	case domain.Unlike:
		ok = s.postRepo.Unlike(ctx, id, userID)
	}
	if !ok {
		logrus.Errorf("toggle like %s on post %s by %s failed", action, id, userID)
		return nil, domain.NewUpdateFailedError(domain.ResourcePost, id)
	}

	switch action {
	case domain.Like:
		p.Like(userID)
	case domain.Unlike:
		p.Unlike(userID)
	}
	s.likes.Send(domain.UserLike{
		TargetType: domain.LikeTargetPost,
		TargetID:   id,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}, action)

	dto := mapper.PostToDTO(p)
	return &dto, nil
}

func (s *service) load(ctx context.Context, id string) (*domain.Post, error) {
	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		logrus.Errorf("load post %s: %v", id, err)
		return nil, domain.AsBaseError(err, domain.NewFetchFailedError(domain.ResourcePost, nil))
	}
	if p == nil {
		return nil, domain.NewNotFoundError(domain.ResourcePost, id)
	}
	return p, nil
}

func (s *service) loadOwned(ctx context.Context, id, actingUserID, action string) (*domain.Post, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.User().ID != actingUserID {
		logrus.Warnf("user %s tried to %s post %s owned by %s", actingUserID, action, id, p.User().ID)
		return nil, domain.NewUnauthorizedError(action, domain.ResourcePost, id)
	}
	return p, nil
}

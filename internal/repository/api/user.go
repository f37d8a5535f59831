package api

import (
	"context"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/factory"
)

type userRepository struct {
	adapter domain.UserAdapter
}

var _ domain.UserRepository = (*userRepository)(nil)

func NewUserRepository(adapter domain.UserAdapter) *userRepository {
	return &userRepository{adapter: adapter}
}

func (r *userRepository) GetCurrent(ctx context.Context) (*domain.User, error) {
	dto, err := r.adapter.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, &domain.BaseError{
			Kind:     domain.KindNotFound,
			Message:  "Current user not found",
			Resource: domain.ResourceUser,
		}
	}
	return factory.CreateUserFromDTO(*dto), nil
}

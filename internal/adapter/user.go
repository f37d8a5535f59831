package adapter

import (
	"context"

	"github.com/Guyuepp/social-feed/domain"
)

type userAdapter struct {
	client APIClient
}

var _ domain.UserAdapter = (*userAdapter)(nil)

func NewUserAdapter(client APIClient) *userAdapter {
	return &userAdapter{client: client}
}

// GetCurrent resolves the user owning the bearer token
func (a *userAdapter) GetCurrent(ctx context.Context) (*domain.UserDTO, error) {
	return decode[domain.UserDTO](a.client.Get(ctx, "/users/me", nil))
}

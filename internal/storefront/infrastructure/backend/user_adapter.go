package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Lexv0lk/storefront/internal/storefront/domain"
)

type UserAdapter struct {
	client *Client
}

func NewUserAdapter(client *Client) *UserAdapter {
	return &UserAdapter{
		client: client,
	}
}

// GetUserByID accepts either a user id or a username.
func (a *UserAdapter) GetUserByID(ctx context.Context, idOrUsername string) (domain.User, error) {
	return a.get(ctx, "/users/"+url.PathEscape(idOrUsername))
}

func (a *UserAdapter) GetCurrentUser(ctx context.Context) (domain.User, error) {
	return a.get(ctx, "/users/me")
}

func (a *UserAdapter) get(ctx context.Context, path string) (domain.User, error) {
	var user domain.User

	if err := a.client.do(ctx, http.MethodGet, apiV1, path, nil, &user); err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return domain.User{}, fmt.Errorf("failed to get user: empty id in response")
	}

	return user, nil
}

package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/Lexv0lk/storefront/internal/pkg/logging"
	"github.com/Lexv0lk/storefront/internal/storefront/domain"
)

//go:generate mockgen -destination=../../../gen/mocks/application/identity_mock.go -package=mocks . IdentityProvider

// IdentityProvider exposes the authenticated user of a gift session.
type IdentityProvider interface {
	Current() (domain.User, bool)
	Reload(ctx context.Context) error
}

type Identity struct {
	mu     sync.RWMutex
	users  domain.UserService
	logger logging.Logger

	user *domain.User
}

func NewIdentity(users domain.UserService, logger logging.Logger) *Identity {
	return &Identity{
		users:  users,
		logger: logger,
	}
}

func (i *Identity) Current() (domain.User, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.user == nil || i.user.ID == "" {
		return domain.User{}, false
	}

	return *i.user, true
}

// Reload refetches the authenticated user. The previous snapshot survives a failed reload.
func (i *Identity) Reload(ctx context.Context) error {
	user, err := i.users.GetCurrentUser(ctx)
	if err != nil {
		i.logger.Warn("failed to reload current user", "error", err.Error())
		return fmt.Errorf("failed to reload current user: %w", err)
	}

	i.mu.Lock()
	i.user = &user
	i.mu.Unlock()

	return nil
}

// Ensure loads the user once; later calls are no-ops until the snapshot is lost.
func (i *Identity) Ensure(ctx context.Context) error {
	if _, ok := i.Current(); ok {
		return nil
	}

	return i.Reload(ctx)
}

package application

import (
	"context"
	"strings"
	"sync"

	"github.com/Lexv0lk/storefront/internal/pkg/logging"
	"github.com/Lexv0lk/storefront/internal/storefront/domain"
)

type RecipientResolver struct {
	mu       sync.Mutex
	users    domain.UserService
	identity IdentityProvider
	notifier domain.Notifier
	logger   logging.Logger

	query     string
	recipient *domain.User
	searching bool
}

func NewRecipientResolver(
	users domain.UserService,
	identity IdentityProvider,
	notifier domain.Notifier,
	logger logging.Logger,
) *RecipientResolver {
	return &RecipientResolver{
		users:    users,
		identity: identity,
		notifier: notifier,
		logger:   logger,
	}
}

// Resolve looks up the gift recipient by username or id. The previous recipient is
// dropped before the lookup is issued.
func (r *RecipientResolver) Resolve(ctx context.Context, query string) (domain.User, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return domain.User{}, r.fail(&domain.EmptyQueryError{Msg: domain.MsgEmptyQuery})
	}

	r.mu.Lock()
	if r.searching {
		r.mu.Unlock()
		return domain.User{}, r.fail(&domain.OperationInProgressError{Msg: domain.MsgInProgress})
	}
	r.searching = true
	r.query = trimmed
	r.recipient = nil
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.searching = false
		r.mu.Unlock()
	}()

	user, err := r.users.GetUserByID(ctx, trimmed)
	if err != nil {
		r.logger.Warn("failed to find user", "query", trimmed, "error", err.Error())
		return domain.User{}, r.fail(&domain.UserNotFoundError{Msg: domain.MsgUserNotFound})
	}

	if current, ok := r.identity.Current(); ok && current.ID == user.ID {
		return domain.User{}, r.fail(&domain.SelfTargetError{Msg: domain.MsgSelfTarget})
	}

	r.mu.Lock()
	r.recipient = &user
	r.mu.Unlock()

	return user, nil
}

// Clear cancels the current selection together with the search query.
func (r *RecipientResolver) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recipient = nil
	r.query = ""
}

// ClearIfRecipient clears the selection only while userID is still the recipient, so a
// lookup finished in the meantime survives.
func (r *RecipientResolver) ClearIfRecipient(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recipient == nil || r.recipient.ID != userID {
		return false
	}

	r.recipient = nil
	r.query = ""

	return true
}

func (r *RecipientResolver) Recipient() (domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recipient == nil {
		return domain.User{}, false
	}

	return *r.recipient, true
}

func (r *RecipientResolver) Query() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.query
}

func (r *RecipientResolver) Searching() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.searching
}

func (r *RecipientResolver) fail(err error) error {
	r.notifier.Notify(domain.ErrorNotification(err.Error()))
	return err
}

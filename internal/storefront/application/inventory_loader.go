package application

import (
	"context"
	"slices"
	"sync"

	"github.com/Lexv0lk/storefront/internal/pkg/logging"
	"github.com/Lexv0lk/storefront/internal/storefront/domain"
)

type InventoryLoader struct {
	mu       sync.Mutex
	chest    domain.ChestService
	identity IdentityProvider
	notifier domain.Notifier
	logger   logging.Logger

	items   []domain.ChestItem
	loading bool
	refetch bool
}

func NewInventoryLoader(
	chest domain.ChestService,
	identity IdentityProvider,
	notifier domain.Notifier,
	logger logging.Logger,
) *InventoryLoader {
	return &InventoryLoader{
		chest:    chest,
		identity: identity,
		notifier: notifier,
		logger:   logger,
	}
}

// Load fetches the sender's chest items unless a non-empty list is already held.
func (l *InventoryLoader) Load(ctx context.Context) error {
	return l.load(ctx, false)
}

// Reload always refetches. The backend may merge or split stacked items on a gift,
// so the list is never patched locally.
func (l *InventoryLoader) Reload(ctx context.Context) error {
	return l.load(ctx, true)
}

func (l *InventoryLoader) load(ctx context.Context, force bool) error {
	user, ok := l.identity.Current()
	if !ok {
		return nil
	}

	l.mu.Lock()
	if l.loading {
		// the running fetch may predate the change; it fetches again before finishing
		if force {
			l.refetch = true
		}
		l.mu.Unlock()
		return nil
	}
	if !force && len(l.items) > 0 {
		l.mu.Unlock()
		return nil
	}
	l.loading = true
	l.mu.Unlock()

	for {
		items, err := l.chest.GetChestItems(ctx, user.ID)

		l.mu.Lock()
		if l.refetch && ctx.Err() == nil {
			l.refetch = false
			l.mu.Unlock()
			continue
		}
		l.refetch = false
		l.loading = false

		if err != nil {
			l.items = nil
			l.mu.Unlock()

			l.logger.Error("failed to fetch chest items", "user_id", user.ID, "error", err.Error())
			l.notifier.Notify(domain.ErrorNotification(domain.MsgChestItemsLoadFailed))

			return &domain.NetworkFailureError{Msg: domain.MsgChestItemsLoadFailed, Err: err}
		}
		l.items = items
		l.mu.Unlock()

		return nil
	}
}

func (l *InventoryLoader) Items() []domain.ChestItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.items)
}

func (l *InventoryLoader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.loading
}

func (l *InventoryLoader) Find(itemID string) (domain.ChestItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, item := range l.items {
		if item.ID == itemID {
			return item, true
		}
	}

	return domain.ChestItem{}, false
}

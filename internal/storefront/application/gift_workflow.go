package application

import (
	"context"

	"github.com/Lexv0lk/storefront/internal/pkg/logging"
	"github.com/Lexv0lk/storefront/internal/storefront/domain"
)

type WorkflowState struct {
	Mode         domain.GiftMode    `json:"mode"`
	SearchQuery  string             `json:"searchQuery"`
	Searching    bool               `json:"searching"`
	Recipient    *domain.User       `json:"recipient"`
	Amount       string             `json:"amount"`
	Items        []domain.ChestItem `json:"items"`
	ItemsLoading bool               `json:"itemsLoading"`
	SelectedItem *domain.ChestItem  `json:"selectedItem"`
	Phase        SubmissionPhase    `json:"phase"`
	LastOutcome  SubmissionPhase    `json:"lastOutcome"`
	CanSubmit    bool               `json:"canSubmit"`
}

// GiftWorkflow ties recipient lookup, mode selection, inventory loading and
// submission together for one gift session.
type GiftWorkflow struct {
	resolver    *RecipientResolver
	selector    *ModeSelector
	loader      *InventoryLoader
	coordinator *SubmissionCoordinator
	notifier    domain.Notifier
}

type GiftServices struct {
	Gifts domain.GiftService
	Users domain.UserService
	Chest domain.ChestService
}

func NewGiftWorkflow(services GiftServices, identity IdentityProvider, notifier domain.Notifier, logger logging.Logger) *GiftWorkflow {
	resolver := NewRecipientResolver(services.Users, identity, notifier, logger)
	selector := NewModeSelector()
	loader := NewInventoryLoader(services.Chest, identity, notifier, logger)
	coordinator := NewSubmissionCoordinator(services.Gifts, identity, resolver, selector, loader, notifier, logger)

	return &GiftWorkflow{
		resolver:    resolver,
		selector:    selector,
		loader:      loader,
		coordinator: coordinator,
		notifier:    notifier,
	}
}

func (w *GiftWorkflow) SearchRecipient(ctx context.Context, query string) (domain.User, error) {
	return w.resolver.Resolve(ctx, query)
}

func (w *GiftWorkflow) ClearRecipient() {
	w.resolver.Clear()
}

// SetMode switches the transfer kind. Entering item mode loads the inventory; a failed
// load is reported through the notifier and does not undo the switch.
func (w *GiftWorkflow) SetMode(ctx context.Context, mode domain.GiftMode) error {
	if _, err := w.selector.SetMode(mode); err != nil {
		w.notifier.Notify(domain.ErrorNotification(err.Error()))
		return err
	}

	if mode == domain.GiftModeItem {
		_ = w.loader.Load(ctx)
	}

	return nil
}

func (w *GiftWorkflow) SetAmount(raw string) {
	w.selector.SetAmount(raw)
}

func (w *GiftWorkflow) LoadInventory(ctx context.Context) ([]domain.ChestItem, error) {
	if err := w.loader.Load(ctx); err != nil {
		return nil, err
	}

	return w.loader.Items(), nil
}

func (w *GiftWorkflow) SelectItem(itemID string) (domain.ChestItem, error) {
	item, ok := w.loader.Find(itemID)
	if !ok {
		err := &domain.NoItemSelectedError{Msg: domain.MsgNoItemSelected}
		w.notifier.Notify(domain.ErrorNotification(err.Msg))
		return domain.ChestItem{}, err
	}

	w.selector.SelectItem(item)

	return item, nil
}

func (w *GiftWorkflow) ClearItem() {
	w.selector.ClearItem()
}

func (w *GiftWorkflow) Submit(ctx context.Context) (domain.TransferResult, error) {
	return w.coordinator.Submit(ctx)
}

func (w *GiftWorkflow) State() WorkflowState {
	state := WorkflowState{
		Mode:         w.selector.Mode(),
		SearchQuery:  w.resolver.Query(),
		Searching:    w.resolver.Searching(),
		Amount:       w.selector.Amount(),
		Items:        w.loader.Items(),
		ItemsLoading: w.loader.Loading(),
		Phase:        w.coordinator.Phase(),
		LastOutcome:  w.coordinator.LastOutcome(),
	}

	if state.Items == nil {
		state.Items = []domain.ChestItem{}
	}

	if recipient, ok := w.resolver.Recipient(); ok {
		state.Recipient = &recipient
	}

	if item, ok := w.selector.SelectedItem(); ok {
		state.SelectedItem = &item
	}

	hasSelection := state.Amount != ""
	if state.Mode == domain.GiftModeItem {
		hasSelection = state.SelectedItem != nil
	}
	state.CanSubmit = state.Phase == PhaseIdle && state.Recipient != nil && hasSelection

	return state
}

package application

import (
	"sync"

	"github.com/Lexv0lk/storefront/internal/storefront/domain"
)

// ModeSelector holds the transfer kind and the selections that only make sense for it:
// the raw amount text in balance mode and the chosen chest item in item mode.
type ModeSelector struct {
	mu sync.Mutex

	mode   domain.GiftMode
	amount string
	item   *domain.ChestItem
}

func NewModeSelector() *ModeSelector {
	return &ModeSelector{
		mode: domain.GiftModeBalance,
	}
}

// SetMode reports whether the mode actually changed. Mode-specific selections are
// discarded on every change.
func (s *ModeSelector) SetMode(mode domain.GiftMode) (bool, error) {
	if !mode.Valid() {
		return false, &domain.InvalidModeError{Msg: domain.MsgInvalidMode}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == mode {
		return false, nil
	}

	s.mode = mode
	s.amount = ""
	s.item = nil

	return true, nil
}

func (s *ModeSelector) Mode() domain.GiftMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode
}

func (s *ModeSelector) SetAmount(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.amount = raw
}

func (s *ModeSelector) Amount() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.amount
}

func (s *ModeSelector) SelectItem(item domain.ChestItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.item = &item
}

func (s *ModeSelector) SelectedItem() (domain.ChestItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.item == nil {
		return domain.ChestItem{}, false
	}

	return *s.item, true
}

func (s *ModeSelector) ClearItem() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.item = nil
}

// ClearSelection drops the selection of the given mode only.
func (s *ModeSelector) ClearSelection(mode domain.GiftMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch mode {
	case domain.GiftModeBalance:
		s.amount = ""
	case domain.GiftModeItem:
		s.item = nil
	}
}

package application

import (
	"io"
	"log/slog"
	"testing"
	"time"

	appmocks "github.com/Lexv0lk/storefront/gen/mocks/application"
	storemocks "github.com/Lexv0lk/storefront/gen/mocks/storefront"
	"github.com/Lexv0lk/storefront/internal/storefront/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

var (
	currentUser = domain.User{ID: "u2", Username: "Alex", Balance: decimal.NewFromInt(500)}
	steve       = domain.User{ID: "u1", Username: "Steve", Balance: decimal.NewFromInt(10)}

	sword = domain.ChestItem{ID: "it1", Attributes: map[string]any{"name": "Diamond Sword"}}
	bow   = domain.ChestItem{ID: "it2", Attributes: map[string]any{"name": "Bow"}}
)

var nopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var timeZero time.Time

type deps struct {
	gifts    *storemocks.MockGiftService
	users    *storemocks.MockUserService
	chest    *storemocks.MockChestService
	identity *appmocks.MockIdentityProvider
	queue    *NotificationQueue
}

func newDeps(t *testing.T, ctrl *gomock.Controller) *deps {
	t.Helper()

	return &deps{
		gifts:    storemocks.NewMockGiftService(ctrl),
		users:    storemocks.NewMockUserService(ctrl),
		chest:    storemocks.NewMockChestService(ctrl),
		identity: appmocks.NewMockIdentityProvider(ctrl),
		queue:    NewNotificationQueue(),
	}
}

func (d *deps) loggedInAs(user domain.User) {
	d.identity.EXPECT().Current().Return(user, true).AnyTimes()
}

func (d *deps) loggedOut() {
	d.identity.EXPECT().Current().Return(domain.User{}, false).AnyTimes()
}

func (d *deps) workflow() *GiftWorkflow {
	return NewGiftWorkflow(GiftServices{Gifts: d.gifts, Users: d.users, Chest: d.chest}, d.identity, d.queue, nopLogger)
}

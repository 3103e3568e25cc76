package application

import (
	"context"
	"testing"

	logmocks "github.com/Lexv0lk/storefront/gen/mocks/logging"
	"github.com/Lexv0lk/storefront/internal/storefront/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryLoader_Load(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		calls int

		prepareFn func(t *testing.T, d *deps)

		expectedItems         []domain.ChestItem
		expectedErr           error
		expectedNotifications []domain.Notification
	}

	tests := []testCase{
		{
			name:  "loads once while populated",
			calls: 2,
			prepareFn: func(t *testing.T, d *deps) {
				d.loggedInAs(currentUser)
				d.chest.EXPECT().GetChestItems(gomock.Any(), "u2").
					Return([]domain.ChestItem{sword, bow}, nil).Times(1)
			},
			expectedItems:         []domain.ChestItem{sword, bow},
			expectedNotifications: []domain.Notification{},
		},
		{
			name:  "empty inventory is fetched again",
			calls: 2,
			prepareFn: func(t *testing.T, d *deps) {
				d.loggedInAs(currentUser)
				d.chest.EXPECT().GetChestItems(gomock.Any(), "u2").
					Return([]domain.ChestItem{}, nil).Times(2)
			},
			expectedItems:         []domain.ChestItem{},
			expectedNotifications: []domain.Notification{},
		},
		{
			name:  "fetch failure leaves list empty",
			calls: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.loggedInAs(currentUser)
				d.chest.EXPECT().GetChestItems(gomock.Any(), "u2").
					Return(nil, assert.AnError).Times(1)
			},
			expectedErr: &domain.NetworkFailureError{},
			expectedNotifications: []domain.Notification{
				domain.ErrorNotification(domain.MsgChestItemsLoadFailed),
			},
		},
		{
			name:  "skipped without identity",
			calls: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.loggedOut()
			},
			expectedNotifications: []domain.Notification{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			d := newDeps(t, ctrl)
			tt.prepareFn(t, d)

			loader := NewInventoryLoader(d.chest, d.identity, d.queue, nopLogger)

			var err error
			for i := 0; i < tt.calls; i++ {
				err = loader.Load(t.Context())
			}

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedItems, loader.Items())
			assert.False(t, loader.Loading())
			assert.Equal(t, tt.expectedNotifications, d.queue.Drain())
		})
	}
}

func TestInventoryLoader_ReloadRefetches(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	d := newDeps(t, ctrl)
	d.loggedInAs(currentUser)

	gomock.InOrder(
		d.chest.EXPECT().GetChestItems(gomock.Any(), "u2").Return([]domain.ChestItem{sword, bow}, nil),
		d.chest.EXPECT().GetChestItems(gomock.Any(), "u2").Return([]domain.ChestItem{bow}, nil),
	)

	loader := NewInventoryLoader(d.chest, d.identity, d.queue, nopLogger)
	require.NoError(t, loader.Load(t.Context()))
	require.NoError(t, loader.Reload(t.Context()))

	assert.Equal(t, []domain.ChestItem{bow}, loader.Items())

	_, ok := loader.Find("it1")
	assert.False(t, ok)

	item, ok := loader.Find("it2")
	assert.True(t, ok)
	assert.Equal(t, bow, item)
}

func TestInventoryLoader_LogsFetchFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	d := newDeps(t, ctrl)
	d.loggedInAs(currentUser)
	d.chest.EXPECT().GetChestItems(gomock.Any(), "u2").Return(nil, assert.AnError)

	logger := logmocks.NewMockLogger(ctrl)
	logger.EXPECT().Error("failed to fetch chest items", "user_id", "u2", "error", gomock.Any()).Times(1)

	loader := NewInventoryLoader(d.chest, d.identity, d.queue, logger)
	err := loader.Load(t.Context())

	assert.ErrorIs(t, err, assert.AnError)
}

func TestInventoryLoader_ReloadDuringLoadRefetches(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	d := newDeps(t, ctrl)
	d.loggedInAs(currentUser)

	started := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		d.chest.EXPECT().GetChestItems(gomock.Any(), "u2").
			DoAndReturn(func(ctx context.Context, userID string) ([]domain.ChestItem, error) {
				close(started)
				<-release
				return []domain.ChestItem{sword, bow}, nil
			}),
		d.chest.EXPECT().GetChestItems(gomock.Any(), "u2").Return([]domain.ChestItem{bow}, nil),
	)

	loader := NewInventoryLoader(d.chest, d.identity, d.queue, nopLogger)

	done := make(chan error, 1)
	go func() {
		done <- loader.Load(context.Background())
	}()

	<-started
	require.NoError(t, loader.Reload(t.Context()))
	assert.True(t, loader.Loading())

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, []domain.ChestItem{bow}, loader.Items())
	assert.False(t, loader.Loading())
}

package application

import (
	"fmt"
	"testing"

	"github.com/Lexv0lk/storefront/internal/storefront/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationQueue_Drain(t *testing.T) {
	t.Parallel()

	queue := NewNotificationQueue()
	assert.Equal(t, []domain.Notification{}, queue.Drain())

	queue.Notify(domain.SuccessNotification("first"))
	queue.Notify(domain.ErrorNotification("second"))

	assert.Equal(t, []domain.Notification{
		domain.SuccessNotification("first"),
		domain.ErrorNotification("second"),
	}, queue.Drain())
	assert.Empty(t, queue.Drain())
}

func TestNotificationQueue_DropsOldest(t *testing.T) {
	t.Parallel()

	queue := NewNotificationQueue()
	for i := 0; i < maxPendingNotifications+3; i++ {
		queue.Notify(domain.ErrorNotification(fmt.Sprintf("n%d", i)))
	}

	drained := queue.Drain()
	require.Len(t, drained, maxPendingNotifications)
	assert.Equal(t, "n3", drained[0].Message)
	assert.Equal(t, fmt.Sprintf("n%d", maxPendingNotifications+2), drained[len(drained)-1].Message)
}

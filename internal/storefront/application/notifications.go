package application

import (
	"sync"

	"github.com/Lexv0lk/storefront/internal/storefront/domain"
)

const maxPendingNotifications = 32

// NotificationQueue keeps toasts until the page polls for them. Oldest entries are
// dropped once the queue is full.
type NotificationQueue struct {
	mu      sync.Mutex
	pending []domain.Notification
}

func NewNotificationQueue() *NotificationQueue {
	return &NotificationQueue{}
}

func (q *NotificationQueue) Notify(notification domain.Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == maxPendingNotifications {
		q.pending = q.pending[1:]
	}

	q.pending = append(q.pending, notification)
}

func (q *NotificationQueue) Drain() []domain.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	drained := q.pending
	q.pending = nil

	if drained == nil {
		return []domain.Notification{}
	}

	return drained
}

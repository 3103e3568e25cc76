package application

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/Lexv0lk/storefront/internal/pkg/logging"
)

// GiftSession is the per-login state of the gift page. Nothing in it outlives the process.
type GiftSession struct {
	Identity      *Identity
	Workflow      *GiftWorkflow
	Notifications *NotificationQueue

	lastSeen  time.Time
	expiresAt time.Time
}

type SessionRegistry struct {
	mu       sync.Mutex
	services GiftServices
	logger   logging.Logger
	ttl      time.Duration
	now      func() time.Time

	sessions map[string]*GiftSession
}

func NewSessionRegistry(services GiftServices, ttl time.Duration, logger logging.Logger) *SessionRegistry {
	return &SessionRegistry{
		services: services,
		logger:   logger,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*GiftSession),
	}
}

// Session returns the gift session bound to token, creating it on first use.
// Idle or expired sessions are swept on every call.
func (r *SessionRegistry) Session(token string, expiresAt time.Time) *GiftSession {
	key := sessionKey(token)

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	session, ok := r.sessions[key]
	if !ok {
		notifications := NewNotificationQueue()
		identity := NewIdentity(r.services.Users, r.logger)

		session = &GiftSession{
			Identity:      identity,
			Workflow:      NewGiftWorkflow(r.services, identity, notifications, r.logger),
			Notifications: notifications,
		}
		r.sessions[key] = session

		r.logger.Debug("gift session created", "sessions", len(r.sessions))
	}

	session.lastSeen = now
	if !expiresAt.IsZero() {
		session.expiresAt = expiresAt
	}

	return session
}

func (r *SessionRegistry) Forget(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionKey(token))
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *SessionRegistry) sweep(now time.Time) {
	for key, session := range r.sessions {
		idle := r.ttl > 0 && now.Sub(session.lastSeen) > r.ttl
		expired := !session.expiresAt.IsZero() && now.After(session.expiresAt)

		if idle || expired {
			delete(r.sessions, key)
		}
	}
}

func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

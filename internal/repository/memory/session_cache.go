package memory

import (
	"time"

	"twin-chat-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionCache keeps recently resolved session rows in memory, keyed by the
// external session identifier. Only the session row is cached; messages are
// always read from the store so reads never see a stale transcript.
type SessionCache struct {
	cache *cache.Cache
}

func NewSessionCache() *SessionCache {
	// Default expiration of 1 hour, expired entries purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionCache{
		cache: c,
	}
}

func (r *SessionCache) Save(session *entity.ChatSession) {
	stored := *session
	stored.Messages = nil
	r.cache.Set(session.SessionId, &stored, cache.DefaultExpiration)
}

func (r *SessionCache) Get(sessionID string) (*entity.ChatSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*entity.ChatSession), true
	}
	return nil, false
}

func (r *SessionCache) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

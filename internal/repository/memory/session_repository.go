package memory

import (
	"time"

	"mentorlink-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live sessions in process memory. Expiry is enforced
// by the cache itself: every entry lives exactly until the session's absolute
// ExpiresAt, so re-saving after login does not extend the lifetime.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(maxAge time.Duration) *SessionRepository {
	c := cache.New(maxAge, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		r.cache.Delete(session.ID)
		return
	}
	r.cache.Set(session.ID, session, ttl)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

package memory

import (
	"sync"
	"time"

	"mentorlink-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// ConversationRepository is the per-session chat ledger. Each session id maps
// to an append-only ordered list of turns, created lazily on first append.
// Entries expire together with the session they belong to (same TTL), which
// bounds growth without changing in-request semantics.
//
// The mutex makes append atomic: concurrent requests carrying the same session
// id never interleave-corrupt the sequence.
type ConversationRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewConversationRepository(maxAge time.Duration) *ConversationRepository {
	return &ConversationRepository{
		cache: cache.New(maxAge, 10*time.Minute),
	}
}

// Append adds entry to the end of the sequence for sessionID, creating the
// sequence if absent. The first append fixes the expiry; later appends keep it.
func (r *ConversationRepository) Append(sessionID string, entry store.ConversationEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, expiresAt, found := r.cache.GetWithExpiration(sessionID); found {
		history := x.([]store.ConversationEntry)
		history = append(history, entry)
		ttl := cache.DefaultExpiration
		if !expiresAt.IsZero() {
			ttl = time.Until(expiresAt)
		}
		r.cache.Set(sessionID, history, ttl)
		return
	}
	r.cache.SetDefault(sessionID, []store.ConversationEntry{entry})
}

// History returns a copy of the full ordered sequence for sessionID. The copy
// keeps callers from mutating the ledger through the returned slice.
func (r *ConversationRepository) History(sessionID string) []store.ConversationEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(sessionID)
	if !found {
		return nil
	}
	history := x.([]store.ConversationEntry)
	out := make([]store.ConversationEntry, len(history))
	copy(out, history)
	return out
}

// Delete drops the sequence for sessionID, if any.
func (r *ConversationRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(sessionID)
}

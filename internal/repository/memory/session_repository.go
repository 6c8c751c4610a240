package memory

import (
	"time"

	"laptop-dss-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps conversation sessions in process memory only.
// Sessions expire after an hour of inactivity and are never persisted.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, expired sessions purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// GetOrCreate returns the session for the given id, creating a fresh one if
// it does not exist or has expired. Save must still be called to refresh the
// expiration after mutating the session.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if s, found := r.Get(sessionID); found {
		return s
	}
	s := store.NewSession(sessionID)
	r.Save(s)
	return s
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
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

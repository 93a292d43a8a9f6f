package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/llehouerou/chorus/internal/session"
)

// SessionFactory creates the state of a new visitor.
type SessionFactory func() (*session.Session, error)

// entry serializes the interactions of one visitor.
type entry struct {
	mu   sync.Mutex
	sess *session.Session
}

// Store keeps visitor sessions in memory. A session that sees no request for
// ttl is dropped, which ends its history.
type Store struct {
	cache   *cache.Cache
	factory SessionFactory
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
func NewStore(ttl time.Duration, factory SessionFactory) *Store {
	return &Store{
		cache:   cache.New(ttl, ttl/2),
		factory: factory,
	}
}

// Get returns a live session and extends its lifetime.
func (s *Store) Get(id string) (*entry, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	e := v.(*entry)
	s.cache.Set(id, e, cache.DefaultExpiration)
	return e, true
}

// Create starts a new session under a random id.
func (s *Store) Create() (string, *entry, error) {
	sess, err := s.factory()
	if err != nil {
		return "", nil, err
	}
	id := uuid.NewString()
	e := &entry{sess: sess}
	s.cache.Set(id, e, cache.DefaultExpiration)
	return id, e, nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}

package onboarding

import (
	"errors"
	"sync"
)

// ErrSessionNotFound is returned when a task update references a channel and user that never started onboarding.
var ErrSessionNotFound = errors.New("onboarding session not found")

// Key identifies a session.
type Key struct {
	Channel string
	User    string
}

// Session tracks the welcome message sent to one user in one channel.
type Session struct {
	Channel               string
	User                  string
	MessageTS             string
	ReactionTaskCompleted bool
	PinTaskCompleted      bool
}

type slot struct {
	mu      sync.Mutex
	session *Session
}

// Store is an in-memory map: (channel, user) -> Session.
// Each key has its own lock, held for a whole read-modify-write sequence
// including any outbound call made inside it. Sessions live for the lifetime of the process.
type Store struct {
	mu    sync.Mutex
	slots map[Key]*slot
}

func NewStore() *Store {
	return &Store{
		slots: make(map[Key]*slot),
	}
}

func (s *Store) lookup(key Key) *slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[key]
}

func (s *Store) getOrCreate(key Key) *slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[key]
	if !ok {
		sl = &slot{}
		s.slots[key] = sl
	}
	return sl
}

// Get returns a copy of the session for key.
func (s *Store) Get(key Key) (Session, bool) {
	sl := s.lookup(key)
	if sl == nil {
		return Session{}, false
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.session == nil {
		return Session{}, false
	}
	return *sl.session, true
}

// Start runs post while holding the key's lock and, if it succeeds, replaces any
// existing session with a fresh one pointing at the returned message timestamp.
func (s *Store) Start(key Key, post func() (string, error)) (Session, error) {
	sl := s.getOrCreate(key)
	sl.mu.Lock()
	defer sl.mu.Unlock()

	ts, err := post()
	if err != nil {
		return Session{}, err
	}
	sl.session = &Session{
		Channel:   key.Channel,
		User:      key.User,
		MessageTS: ts,
	}
	return *sl.session, nil
}

// Update runs fn on the stored session while holding the key's lock.
// Changes fn makes are kept even when it returns an error.
func (s *Store) Update(key Key, fn func(sess *Session) error) (Session, error) {
	sl := s.lookup(key)
	if sl == nil {
		return Session{}, ErrSessionNotFound
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.session == nil {
		return Session{}, ErrSessionNotFound
	}
	err := fn(sl.session)
	return *sl.session, err
}

// Len returns the number of started sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	slots := make([]*slot, 0, len(s.slots))
	for _, sl := range s.slots {
		slots = append(slots, sl)
	}
	s.mu.Unlock()

	var n int
	for _, sl := range slots {
		sl.mu.Lock()
		if sl.session != nil {
			n++
		}
		sl.mu.Unlock()
	}
	return n
}

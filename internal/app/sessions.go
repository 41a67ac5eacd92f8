package app

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the session cookie set on every visitor.
const CookieName = "pinecoast_session"

// Factory builds a fresh App for a new visitor.
type Factory func() *App

// NewFactory returns a Factory building Apps from opts.
func NewFactory(opts Options) Factory {
	return func() *App { return New(opts) }
}

// Sessions keeps one App per visitor, keyed by a cookie. Idle sessions
// expire after the TTL.
type Sessions struct {
	ttl    time.Duration
	newApp Factory
	now    func() time.Time

	mu   sync.Mutex
	apps map[string]*App

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewSessions starts a session store and its background sweeper.
func NewSessions(ttl time.Duration, newApp Factory) *Sessions {
	s := &Sessions{
		ttl:    ttl,
		newApp: newApp,
		now:    time.Now,
		apps:   make(map[string]*App),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// Get returns the visitor's App, creating a session and setting the cookie
// if the request has none or it has expired.
func (s *Sessions) Get(w http.ResponseWriter, r *http.Request) *App {
	if c, err := r.Cookie(CookieName); err == nil {
		s.mu.Lock()
		a, ok := s.apps[c.Value]
		s.mu.Unlock()
		if ok {
			a.touch()
			return a
		}
	}

	id := uuid.NewString()
	a := s.newApp()
	s.mu.Lock()
	s.apps[id] = a
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return a
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.apps)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Sessions) Sweep() int {
	now := s.now()
	var expired []*App

	s.mu.Lock()
	for id, a := range s.apps {
		if a.idleSince(now) > s.ttl {
			expired = append(expired, a)
			delete(s.apps, id)
		}
	}
	s.mu.Unlock()

	for _, a := range expired {
		a.Close()
	}
	return len(expired)
}

func (s *Sessions) sweepLoop() {
	defer close(s.done)

	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("app: expired %d idle sessions", n)
			}
		}
	}
}

// Close stops the sweeper and closes every session.
func (s *Sessions) Close() {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done

		s.mu.Lock()
		apps := s.apps
		s.apps = make(map[string]*App)
		s.mu.Unlock()

		for _, a := range apps {
			a.Close()
		}
	})
}

package session

import (
	"sync"
	"time"

	"github.com/parasuram-clad/hrsuite-core/identity"
	"github.com/pkg/errors"
)

// State is one of the two session states. The only legal transitions are
// Unauthenticated -> (Login) -> Authenticated -> (Logout) -> Unauthenticated.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Mode is the sub-mode of an authenticated session, fixed at login time by
// the identity's super-admin flag. It never changes mid-session.
type Mode string

const (
	ModeNone           Mode = ""
	ModeTenantScoped   Mode = "tenant"
	ModePlatformScoped Mode = "platform"
)

// EventKind discriminates session change events.
type EventKind string

const (
	EventLogin  EventKind = "login"
	EventLogout EventKind = "logout"
)

// Event is delivered to listeners on every state transition. Idempotent
// logins (same identity twice) do not produce a second event.
type Event struct {
	Kind     EventKind
	Identity identity.Identity // zero value on logout
	At       time.Time
}

// Listener observes session transitions. The tenant context subscribes
// through one of these so identity changes trigger tenant re-resolution.
type Listener func(Event)

var (
	ErrInvalidRole          = errors.New("identity role not in the closed role set")
	ErrAlreadyAuthenticated = errors.New("session already holds a different identity")
)

// Session owns the authenticated identity, or none. It holds at most one
// current identity at a time; absence means unauthenticated.
type Session struct {
	lock       sync.RWMutex
	current    *identity.Identity
	mode       Mode
	loggedInAt time.Time

	listeners []Listener
	nowTime   func() time.Time // nowTime function (injectable for testing)
}

// Option modifies a Session at construction time.
type Option func(*Session)

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Session) {
		s.nowTime = nowFunc
	}
}

// WithListener registers a transition listener.
func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listeners = append(s.listeners, l)
	}
}

// New returns an unauthenticated session.
func New(options ...Option) *Session {
	s := &Session{nowTime: time.Now}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Login sets the current identity. Calling it again with the same identity
// is a no-op: no event fires and downstream tenant state is untouched.
// Logging in a different identity over an authenticated session is not a
// legal transition; callers must Logout first.
func (s *Session) Login(id identity.Identity) error {
	if !id.SuperAdmin && !id.Role.Valid() {
		return errors.Wrapf(ErrInvalidRole, "[Login] role %q", id.Role)
	}

	s.lock.Lock()
	if s.current != nil {
		same := s.current.ID == id.ID
		s.lock.Unlock()
		if same {
			return nil
		}
		return errors.Wrapf(ErrAlreadyAuthenticated, "[Login] identity %q", s.current.ID)
	}

	s.current = &id
	s.mode = ModeTenantScoped
	if id.SuperAdmin {
		s.mode = ModePlatformScoped
	}
	s.loggedInAt = s.nowTime()
	ev := Event{Kind: EventLogin, Identity: id, At: s.loggedInAt}
	s.lock.Unlock()

	s.notify(ev)
	return nil
}

// Logout clears the current identity. A logout on an unauthenticated
// session is a no-op. Navigation requests in flight when this fires have no
// guaranteed outcome; the authorizer's unauthenticated short-circuit makes
// any stale allow unreachable.
func (s *Session) Logout() {
	s.lock.Lock()
	if s.current == nil {
		s.lock.Unlock()
		return
	}
	s.current = nil
	s.mode = ModeNone
	ev := Event{Kind: EventLogout, At: s.nowTime()}
	s.lock.Unlock()

	s.notify(ev)
}

// State returns the current session state.
func (s *Session) State() State {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.current == nil {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

// Mode returns the authenticated sub-mode, or ModeNone when unauthenticated.
func (s *Session) Mode() Mode {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.mode
}

// Current returns the authenticated identity, if any.
func (s *Session) Current() (identity.Identity, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.current == nil {
		return identity.Identity{}, false
	}
	return *s.current, true
}

func (s *Session) notify(ev Event) {
	for _, l := range s.listeners {
		l(ev)
	}
}

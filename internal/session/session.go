package session

import "sync"

// State tracks where a session is in its lifecycle.
type State int

const (
	Anonymous State = iota
	Authenticated
	Expired
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Expired:
		return "expired"
	default:
		return "anonymous"
	}
}

// Session holds the bearer credential attached to every API call.
// It is an explicit object handed to the client rather than ambient
// global state, so callers can observe and drive its lifecycle.
type Session struct {
	mu    sync.Mutex
	token string
	state State
}

// New returns an anonymous session with no credential.
func New() *Session {
	return &Session{}
}

// NewWithToken returns an authenticated session carrying the given token.
// An empty token yields an anonymous session.
func NewWithToken(token string) *Session {
	s := &Session{}
	if token != "" {
		s.token = token
		s.state = Authenticated
	}
	return s
}

// Token returns the current bearer token, or "" when not authenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Authenticated {
		return ""
	}
	return s.token
}

// Authenticate installs a fresh token and moves the session to Authenticated.
func (s *Session) Authenticate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.state = Authenticated
}

// Expire marks the credential as no longer valid. The token is cleared
// so it cannot leak onto later requests.
func (s *Session) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.state = Expired
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Active reports whether the session currently carries a usable credential.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == Authenticated && s.token != ""
}

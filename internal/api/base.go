package api

import (
	"time"

	"github.com/skleeno/showroom-cli/internal/session"
)

// DefaultBaseURL is the single source of truth for the backend target.
const DefaultBaseURL = "http://localhost:5000"

// NewDefaultClient builds a client pointed at the default backend URL.
func NewDefaultClient(sess *session.Session, timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, sess, timeout...)
}

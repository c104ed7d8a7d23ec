package client

import (
	"os"
	"strings"
)

// Session holds the one piece of durable client state: the phone number that
// proves identity to the backend. It is persisted to a file so a restart does
// not log the user out. Storage failures are deliberately swallowed; the user
// is simply treated as logged out.
type Session struct {
	path string
}

func NewSession(path string) *Session {
	return &Session{path: path}
}

func (s *Session) Set(phone string) {
	_ = os.WriteFile(s.path, []byte(phone), 0o600)
}

// Get returns the stored phone, or "" when absent or unreadable.
func (s *Session) Get() string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (s *Session) Clear() {
	_ = os.Remove(s.path)
}

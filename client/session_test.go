package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	s := NewSession(path)

	assert.Empty(t, s.Get())

	s.Set("9990001111")
	assert.Equal(t, "9990001111", s.Get())

	s.Clear()
	assert.Empty(t, s.Get())
}

func TestSessionSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	NewSession(path).Set("9990001111")

	// A fresh instance over the same file sees the stored identity.
	assert.Equal(t, "9990001111", NewSession(path).Get())
}

func TestSessionUnavailableStorageIsSilent(t *testing.T) {
	// Parent directory does not exist; every operation must no-op.
	s := NewSession(filepath.Join(t.TempDir(), "missing", "session"))

	s.Set("9990001111")
	assert.Empty(t, s.Get(), "a failed write leaves the user logged out")
	s.Clear()
}

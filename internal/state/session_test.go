package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrego/internal/domain"
)

func TestSessionTokenInvariant(t *testing.T) {
	s := NewSessionStore()

	// Unauthenticated: empty token
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())

	s.Authenticate(domain.UserSummary{ID: "u1", Email: "ana@example.com"}, "tok-123")
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok-123", s.Token())

	// An empty token can never authenticate
	s.Authenticate(domain.UserSummary{ID: "u1"}, "")
	assert.False(t, s.IsAuthenticated())

	s.Authenticate(domain.UserSummary{ID: "u1"}, "tok-456")
	s.Reset()
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
	assert.Nil(t, s.Profile())
}

func TestSessionRestoreRunsOnce(t *testing.T) {
	s := NewSessionStore()
	require.True(t, s.IsRestoring())

	s.FinishRestore(&domain.AuthSession{
		User:  domain.UserSummary{ID: "u1", Email: "ana@example.com"},
		Token: "tok-123",
	})
	assert.False(t, s.IsRestoring())
	assert.True(t, s.IsAuthenticated())

	// Later session changes never re-enter the restoring phase
	s.FinishRestore(nil)
	assert.False(t, s.IsRestoring())
}

func TestSessionRestoreColdStart(t *testing.T) {
	s := NewSessionStore()

	s.FinishRestore(nil)

	assert.False(t, s.IsRestoring())
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestSessionResetKeepsLaunchFlag(t *testing.T) {
	s := NewSessionStore()
	s.MarkLaunched()

	s.Authenticate(domain.UserSummary{ID: "u1"}, "tok")
	s.Reset()

	assert.True(t, s.HasLaunched(), "logout must not replay the first-launch experience")
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrego/internal/domain"
)

func testSessionFile(t *testing.T) *SessionFile {
	t.Helper()
	return NewSessionFile(filepath.Join(t.TempDir(), "session.json"))
}

func TestSessionPersistRestoreRoundtrip(t *testing.T) {
	store := testSessionFile(t)

	session := domain.AuthSession{
		User: domain.UserSummary{
			ID:        "u1",
			FirstName: "Ana",
			LastName:  "Costa",
			Email:     "ana@example.com",
		},
		Token: "tok-123",
	}
	require.NoError(t, store.Persist(session))

	restored, err := store.Restore()
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, session, *restored)
}

func TestSessionRestoreMissingFileIsNotAnError(t *testing.T) {
	store := testSessionFile(t)

	restored, err := store.Restore()

	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestSessionRestoreDiscardsMalformedBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	restored, err := NewSessionFile(path).Restore()

	require.NoError(t, err, "a corrupt blob is no session, not a failure")
	assert.Nil(t, restored)
}

func TestSessionRestoreDiscardsTokenlessBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"user": {"id": "u1"}, "token": ""}`), 0600))

	restored, err := NewSessionFile(path).Restore()

	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestSessionClear(t *testing.T) {
	store := testSessionFile(t)
	require.NoError(t, store.Persist(domain.AuthSession{
		User:  domain.UserSummary{ID: "u1"},
		Token: "tok",
	}))

	require.NoError(t, store.Clear())

	restored, err := store.Restore()
	require.NoError(t, err)
	assert.Nil(t, restored)

	// Clearing twice is fine
	assert.NoError(t, store.Clear())
}

func TestSessionPersistCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "session.json")
	store := NewSessionFile(path)

	require.NoError(t, store.Persist(domain.AuthSession{
		User:  domain.UserSummary{ID: "u1"},
		Token: "tok",
	}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

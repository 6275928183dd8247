package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SetCurrentUser("u1"))
	require.NoError(t, store.SetCurrentPeriodID("p1"))

	userID, err := store.CurrentUserID()
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	periodID, err := store.CurrentPeriodID()
	require.NoError(t, err)
	assert.Equal(t, "p1", periodID)
}

func TestFileStoreMissingFilesReadEmpty(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	userID, err := store.CurrentUserID()
	require.NoError(t, err)
	assert.Empty(t, userID)

	periodID, err := store.CurrentPeriodID()
	require.NoError(t, err)
	assert.Empty(t, periodID)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.SetCurrentPeriodID("p1"))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	periodID, err := second.CurrentPeriodID()
	require.NoError(t, err)
	assert.Equal(t, "p1", periodID)
}

func TestFileStoreClearSelection(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SetCurrentPeriodID("p1"))
	require.NoError(t, store.SetCurrentPeriodID(""))

	periodID, err := store.CurrentPeriodID()
	require.NoError(t, err)
	assert.Empty(t, periodID)
}

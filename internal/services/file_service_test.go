package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	files := NewFileService(db)
	aliceID := registerUser(t, auth, "alice@example.com")
	bobID := registerUser(t, auth, "bob@example.com")

	file, err := files.Create(aliceID, "deck.pdf", "application/pdf", 2048, "/uploads/deck.pdf")
	require.NoError(t, err)

	got, err := files.Get(aliceID, file.ID)
	require.NoError(t, err)
	assert.Equal(t, "deck.pdf", got.Name)

	_, err = files.Get(bobID, file.ID)
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = files.Delete(bobID, file.ID)
	assert.ErrorIs(t, err, ErrFileNotFound)

	url, err := files.Delete(aliceID, file.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/deck.pdf", url)

	_, total, err := files.List(aliceID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

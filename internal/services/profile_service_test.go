package services

import (
	"testing"

	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdateMetadata(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	profiles := NewProfileService(db)
	userID := registerUser(t, auth, "profile@example.com")

	updated, err := profiles.Update(userID, &dto.UpdateProfileRequest{
		FullName:  strPtr("Jane Doe"),
		AvatarURL: strPtr("https://cdn.example.com/a.png"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.FullName)
	assert.Equal(t, "Jane Doe", *updated.FullName)
	assert.Equal(t, models.RoleFree, updated.Role)
	assert.Equal(t, "profile@example.com", updated.Email)
}

func TestProfileGetUnknownUser(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileService(db)

	_, err := profiles.Get(uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileSetRole(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	profiles := NewProfileService(db)
	userID := registerUser(t, auth, "profile@example.com")

	updated, err := profiles.SetRole(userID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	_, err = profiles.SetRole(userID, "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = profiles.SetRole(uuid.New(), models.RolePro)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileListAll(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	profiles := NewProfileService(db)
	registerUser(t, auth, "one@example.com")
	registerUser(t, auth, "two@example.com")
	registerUser(t, auth, "three@example.com")

	got, total, err := profiles.ListAll(2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, got, 2)
}

package services

import (
	"testing"

	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterProvisionsProfile(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())

	resp, err := auth.Register(&dto.RegisterRequest{
		Email:    "u1@example.com",
		Password: "password123",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	var profiles []models.Profile
	require.NoError(t, db.Find(&profiles).Error)
	require.Len(t, profiles, 1)
	assert.Equal(t, resp.User.ID, profiles[0].ID)
	assert.Equal(t, models.RoleFree, profiles[0].Role)
	assert.Equal(t, "u1@example.com", profiles[0].Email)
	require.NotNil(t, profiles[0].FullName)
	assert.Equal(t, "Jane Doe", *profiles[0].FullName)
	assert.Nil(t, profiles[0].AvatarURL)
}

func TestRegisterRollsBackUserWhenProfileInsertFails(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())

	// Make the second insert inside the provisioning transaction fail.
	require.NoError(t, db.Migrator().DropTable(&models.Profile{}))

	_, err := auth.Register(&dto.RegisterRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	require.Error(t, err)

	// The user insert succeeded inside the transaction; the rollback
	// must take it back out.
	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(0), userCount)
}

func TestRegisterDuplicateEmailLeavesNoPartialState(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())

	registerUser(t, auth, "dup@example.com")

	_, err := auth.Register(&dto.RegisterRequest{
		Email:    "dup@example.com",
		Password: "password123",
	})
	require.ErrorIs(t, err, ErrEmailTaken)

	var userCount, profileCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Profile{}).Count(&profileCount)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), profileCount)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	registerUser(t, auth, "login@example.com")

	resp, err := auth.Login(&dto.LoginRequest{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleFree, resp.User.Role)

	_, err = auth.Login(&dto.LoginRequest{Email: "login@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())

	resp, err := auth.Register(&dto.RegisterRequest{Email: "r@example.com", Password: "password123"})
	require.NoError(t, err)

	rotated, err := auth.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	// The old token is revoked after rotation.
	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDeleteAccountCascades(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	campaigns := NewCampaignService(db)
	messages := NewMessageService(db, NewMailer(cfg))

	userID := registerUser(t, auth, "gone@example.com")
	otherID := registerUser(t, auth, "stays@example.com")

	lead, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Jane", Email: "jane@x.com"})
	require.NoError(t, err)
	_, err = campaigns.Create(userID, &dto.CreateCampaignRequest{Name: "Spring"})
	require.NoError(t, err)
	_, err = messages.Create(userID, &dto.CreateMessageRequest{LeadID: lead.ID, Type: models.MessageTypeCall})
	require.NoError(t, err)

	otherLead, err := leads.Create(otherID, &dto.CreateLeadRequest{Name: "Keep"})
	require.NoError(t, err)

	require.NoError(t, auth.DeleteAccount(userID, "password123"))

	for _, model := range []interface{}{&models.Lead{}, &models.Campaign{}, &models.Message{}, &models.File{}} {
		var count int64
		db.Model(model).Where("owner_id = ?", userID).Count(&count)
		assert.Equal(t, int64(0), count)
	}
	var profileCount int64
	db.Model(&models.Profile{}).Where("id = ?", userID).Count(&profileCount)
	assert.Equal(t, int64(0), profileCount)

	// The other owner's rows survive.
	_, err = leads.Get(otherID, otherLead.ID)
	assert.NoError(t, err)
}

func TestDeleteAccountWrongPassword(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	userID := registerUser(t, auth, "safe@example.com")

	err := auth.DeleteAccount(userID, "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	assert.Equal(t, int64(1), userCount)
}

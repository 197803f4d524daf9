package services

import (
	"testing"

	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignCreateValidation(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	campaigns := NewCampaignService(db)
	userID := registerUser(t, auth, "camp@example.com")

	campaign, err := campaigns.Create(userID, &dto.CreateCampaignRequest{Name: "Q3 Launch"})
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusDraft, campaign.Status)

	_, err = campaigns.Create(userID, &dto.CreateCampaignRequest{Name: "Bad", Status: "running"})
	assert.ErrorIs(t, err, ErrInvalidCampaignStatus)

	negative := -10.0
	_, err = campaigns.Create(userID, &dto.CreateCampaignRequest{Name: "Bad", Budget: &negative})
	assert.ErrorIs(t, err, ErrNegativeBudget)

	var count int64
	db.Model(&models.Campaign{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCampaignOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	campaigns := NewCampaignService(db)
	aliceID := registerUser(t, auth, "alice@example.com")
	bobID := registerUser(t, auth, "bob@example.com")

	campaign, err := campaigns.Create(aliceID, &dto.CreateCampaignRequest{Name: "Q3 Launch"})
	require.NoError(t, err)

	_, err = campaigns.Get(bobID, campaign.ID)
	assert.ErrorIs(t, err, ErrCampaignNotFound)

	_, err = campaigns.Update(bobID, campaign.ID, &dto.UpdateCampaignRequest{Name: strPtr("Mine now")})
	assert.ErrorIs(t, err, ErrCampaignNotFound)

	err = campaigns.Delete(bobID, campaign.ID)
	assert.ErrorIs(t, err, ErrCampaignNotFound)

	kept, err := campaigns.Get(aliceID, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q3 Launch", kept.Name)
}

func TestCampaignUpdateStatusTransition(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	campaigns := NewCampaignService(db)
	userID := registerUser(t, auth, "camp@example.com")

	campaign, err := campaigns.Create(userID, &dto.CreateCampaignRequest{Name: "Q3 Launch"})
	require.NoError(t, err)

	updated, err := campaigns.Update(userID, campaign.ID, &dto.UpdateCampaignRequest{
		Status: strPtr(models.CampaignStatusActive),
	})
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusActive, updated.Status)

	_, err = campaigns.Update(userID, campaign.ID, &dto.UpdateCampaignRequest{Status: strPtr("archived")})
	assert.ErrorIs(t, err, ErrInvalidCampaignStatus)
}

func TestCampaignDeleteDetachesMessages(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	campaigns := NewCampaignService(db)
	messages := NewMessageService(db, NewMailer(cfg))
	userID := registerUser(t, auth, "camp@example.com")

	lead, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Jane"})
	require.NoError(t, err)
	campaign, err := campaigns.Create(userID, &dto.CreateCampaignRequest{Name: "Q3 Launch"})
	require.NoError(t, err)
	message, err := messages.Create(userID, &dto.CreateMessageRequest{
		LeadID:     lead.ID,
		CampaignID: &campaign.ID,
		Type:       models.MessageTypeEmail,
		Content:    "hello",
	})
	require.NoError(t, err)

	require.NoError(t, campaigns.Delete(userID, campaign.ID))

	// The message survives the campaign with its reference cleared.
	kept, err := messages.Get(userID, message.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.CampaignID)
}

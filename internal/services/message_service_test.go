package services

import (
	"testing"

	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCreateRequiresOwnedLead(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	messages := NewMessageService(db, NewMailer(cfg))
	aliceID := registerUser(t, auth, "alice@example.com")
	bobID := registerUser(t, auth, "bob@example.com")

	lead, err := leads.Create(aliceID, &dto.CreateLeadRequest{Name: "Jane", Email: "jane@x.com"})
	require.NoError(t, err)

	// Referencing someone else's lead looks identical to a missing one.
	_, err = messages.Create(bobID, &dto.CreateMessageRequest{LeadID: lead.ID, Type: models.MessageTypeEmail})
	assert.ErrorIs(t, err, ErrLeadNotFound)

	_, err = messages.Create(aliceID, &dto.CreateMessageRequest{LeadID: uuid.New(), Type: models.MessageTypeEmail})
	assert.ErrorIs(t, err, ErrLeadNotFound)

	message, err := messages.Create(aliceID, &dto.CreateMessageRequest{LeadID: lead.ID, Type: models.MessageTypeEmail, Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusDraft, message.Status)
	assert.Nil(t, message.SentAt)
}

func TestMessageCreateRejectsInvalidType(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	messages := NewMessageService(db, NewMailer(cfg))
	userID := registerUser(t, auth, "msg@example.com")

	lead, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Jane"})
	require.NoError(t, err)

	_, err = messages.Create(userID, &dto.CreateMessageRequest{LeadID: lead.ID, Type: "fax"})
	assert.ErrorIs(t, err, ErrInvalidMessageType)
}

func TestMessageCreateRequiresOwnedCampaign(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	campaigns := NewCampaignService(db)
	messages := NewMessageService(db, NewMailer(cfg))
	aliceID := registerUser(t, auth, "alice@example.com")
	bobID := registerUser(t, auth, "bob@example.com")

	lead, err := leads.Create(bobID, &dto.CreateLeadRequest{Name: "Jane"})
	require.NoError(t, err)
	campaign, err := campaigns.Create(aliceID, &dto.CreateCampaignRequest{Name: "Q3 Launch"})
	require.NoError(t, err)

	_, err = messages.Create(bobID, &dto.CreateMessageRequest{
		LeadID:     lead.ID,
		CampaignID: &campaign.ID,
		Type:       models.MessageTypeSMS,
	})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestMessageUpdateDetachesCampaign(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	campaigns := NewCampaignService(db)
	messages := NewMessageService(db, NewMailer(cfg))
	userID := registerUser(t, auth, "msg@example.com")

	lead, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Jane"})
	require.NoError(t, err)
	campaign, err := campaigns.Create(userID, &dto.CreateCampaignRequest{Name: "Q3 Launch"})
	require.NoError(t, err)
	message, err := messages.Create(userID, &dto.CreateMessageRequest{
		LeadID:     lead.ID,
		CampaignID: &campaign.ID,
		Type:       models.MessageTypeSMS,
	})
	require.NoError(t, err)
	require.NotNil(t, message.CampaignID)

	detach := uuid.Nil
	updated, err := messages.Update(userID, message.ID, &dto.UpdateMessageRequest{CampaignID: &detach})
	require.NoError(t, err)
	assert.Nil(t, updated.CampaignID)

	reread, err := messages.Get(userID, message.ID)
	require.NoError(t, err)
	assert.Nil(t, reread.CampaignID)

	// The campaign itself is untouched.
	_, err = campaigns.Get(userID, campaign.ID)
	assert.NoError(t, err)
}

func TestMessageSendMarksNonEmailSent(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	messages := NewMessageService(db, NewMailer(cfg))
	userID := registerUser(t, auth, "msg@example.com")

	lead, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Jane"})
	require.NoError(t, err)
	message, err := messages.Create(userID, &dto.CreateMessageRequest{LeadID: lead.ID, Type: models.MessageTypeCall})
	require.NoError(t, err)

	sent, err := messages.Send(userID, message.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusSent, sent.Status)
	require.NotNil(t, sent.SentAt)

	// A sent message cannot be sent again.
	_, err = messages.Send(userID, message.ID)
	assert.ErrorIs(t, err, ErrMessageNotDraft)
}

func TestMessageSendEmailWithoutSMTPFails(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	messages := NewMessageService(db, NewMailer(cfg))
	userID := registerUser(t, auth, "msg@example.com")

	lead, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Jane", Email: "jane@x.com"})
	require.NoError(t, err)
	message, err := messages.Create(userID, &dto.CreateMessageRequest{LeadID: lead.ID, Type: models.MessageTypeEmail, Content: "hi"})
	require.NoError(t, err)

	_, err = messages.Send(userID, message.ID)
	require.ErrorIs(t, err, ErrMailerDisabled)

	failed, err := messages.Get(userID, message.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusFailed, failed.Status)
	assert.Nil(t, failed.SentAt)

	// A failed message can be retried.
	_, err = messages.Send(userID, message.ID)
	assert.ErrorIs(t, err, ErrMailerDisabled)
}

func TestMessageSendEmailRequiresLeadEmail(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	messages := NewMessageService(db, NewMailer(cfg))
	userID := registerUser(t, auth, "msg@example.com")

	lead, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "No Email"})
	require.NoError(t, err)
	message, err := messages.Create(userID, &dto.CreateMessageRequest{LeadID: lead.ID, Type: models.MessageTypeEmail})
	require.NoError(t, err)

	_, err = messages.Send(userID, message.ID)
	assert.ErrorIs(t, err, ErrLeadHasNoEmail)
}

func TestMessageListFiltersByLead(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	messages := NewMessageService(db, NewMailer(cfg))
	userID := registerUser(t, auth, "msg@example.com")

	first, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "First"})
	require.NoError(t, err)
	second, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Second"})
	require.NoError(t, err)

	_, err = messages.Create(userID, &dto.CreateMessageRequest{LeadID: first.ID, Type: models.MessageTypeSMS})
	require.NoError(t, err)
	_, err = messages.Create(userID, &dto.CreateMessageRequest{LeadID: second.ID, Type: models.MessageTypeSMS})
	require.NoError(t, err)

	got, total, err := messages.List(userID, &first.ID, nil, "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].LeadID)
}

package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadCreateDefaultsAndTags(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	leads := NewLeadService(db)
	userID := registerUser(t, auth, "leads@example.com")

	lead, err := leads.Create(userID, &dto.CreateLeadRequest{
		Name:  "Jane",
		Email: "jane@x.com",
		Tags:  []string{"vip", "web", "vip", " ", "web"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, userID, lead.OwnerID)
	assert.ElementsMatch(t, []string{"vip", "web"}, TagsFromJSON(lead.Tags))
}

func TestLeadCreateRejectsInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	leads := NewLeadService(db)
	userID := registerUser(t, auth, "leads@example.com")

	_, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Bad", Status: "archived"})
	require.ErrorIs(t, err, ErrInvalidLeadStatus)

	var count int64
	db.Model(&models.Lead{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLeadOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	leads := NewLeadService(db)
	aliceID := registerUser(t, auth, "alice@example.com")
	bobID := registerUser(t, auth, "bob@example.com")

	lead, err := leads.Create(aliceID, &dto.CreateLeadRequest{Name: "Jane", Email: "jane@x.com", Source: "web"})
	require.NoError(t, err)

	// Owner sees the row.
	got, total, err := leads.List(aliceID, "", "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)

	// A different caller sees nothing, and targeting the row directly
	// behaves exactly like not-found.
	got, total, err = leads.List(bobID, "", "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, got)

	_, err = leads.Get(bobID, lead.ID)
	assert.ErrorIs(t, err, ErrLeadNotFound)

	_, err = leads.Update(bobID, lead.ID, &dto.UpdateLeadRequest{Name: strPtr("Hijacked")})
	assert.ErrorIs(t, err, ErrLeadNotFound)

	err = leads.Delete(bobID, lead.ID)
	assert.ErrorIs(t, err, ErrLeadNotFound)

	// Nothing changed for the owner.
	kept, err := leads.Get(aliceID, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", kept.Name)
}

func TestLeadUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	leads := NewLeadService(db)
	userID := registerUser(t, auth, "leads@example.com")

	lead, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Jane", Email: "jane@x.com"})
	require.NoError(t, err)

	updated, err := leads.Update(userID, lead.ID, &dto.UpdateLeadRequest{
		Status: strPtr(models.LeadStatusQualified),
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusQualified, updated.Status)
	assert.Equal(t, "jane@x.com", updated.Email)

	_, err = leads.Update(userID, lead.ID, &dto.UpdateLeadRequest{Status: strPtr("bogus")})
	assert.ErrorIs(t, err, ErrInvalidLeadStatus)
}

func TestLeadDeleteRemovesMessages(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg)
	leads := NewLeadService(db)
	messages := NewMessageService(db, NewMailer(cfg))
	userID := registerUser(t, auth, "leads@example.com")

	lead, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Jane"})
	require.NoError(t, err)
	_, err = messages.Create(userID, &dto.CreateMessageRequest{LeadID: lead.ID, Type: models.MessageTypeSMS})
	require.NoError(t, err)

	require.NoError(t, leads.Delete(userID, lead.ID))

	var count int64
	db.Model(&models.Message{}).Where("lead_id = ?", lead.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLeadCSVExportImportRoundTrip(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	leads := NewLeadService(db)
	aliceID := registerUser(t, auth, "alice@example.com")
	bobID := registerUser(t, auth, "bob@example.com")

	_, err := leads.Create(aliceID, &dto.CreateLeadRequest{
		Name: "Jane", Email: "jane@x.com", Source: "web",
		Status: models.LeadStatusContacted, Tags: []string{"vip", "q3"},
	})
	require.NoError(t, err)
	_, err = leads.Create(bobID, &dto.CreateLeadRequest{Name: "Hidden"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, leads.ExportCSV(aliceID, &buf))

	out := buf.String()
	assert.Contains(t, out, "Jane")
	assert.Contains(t, out, "vip;q3")
	assert.NotContains(t, out, "Hidden")

	// Import the export into a third account.
	carolID := registerUser(t, auth, "carol@example.com")
	result, err := leads.ImportCSV(carolID, strings.NewReader(out), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	imported, _, err := leads.List(carolID, "", "", 20, 0)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "Jane", imported[0].Name)
	assert.Equal(t, models.LeadStatusContacted, imported[0].Status)
	assert.ElementsMatch(t, []string{"vip", "q3"}, TagsFromJSON(imported[0].Tags))
	assert.Equal(t, carolID, imported[0].OwnerID)
}

func TestLeadCSVImportSkipsInvalidRows(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	leads := NewLeadService(db)
	userID := registerUser(t, auth, "import@example.com")

	csvData := strings.Join([]string{
		"name,email,status",
		"Good,good@x.com,new",
		",missing-name@x.com,new",
		"BadStatus,bad@x.com,archived",
		"AlsoGood,also@x.com,qualified",
	}, "\n")

	result, err := leads.ImportCSV(userID, strings.NewReader(csvData), 100)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Line)
	assert.Equal(t, 4, result.Errors[1].Line)

	_, total, err := leads.List(userID, "", "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestLeadCSVImportRequiresNameColumn(t *testing.T) {
	db := newTestDB(t)
	leads := NewLeadService(db)

	_, err := leads.ImportCSV(uuid.New(), strings.NewReader("email\nfoo@x.com"), 100)
	assert.Error(t, err)
}

func TestLeadListFilters(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestConfig())
	leads := NewLeadService(db)
	userID := registerUser(t, auth, "filter@example.com")

	_, err := leads.Create(userID, &dto.CreateLeadRequest{Name: "Jane Smith", Status: models.LeadStatusQualified})
	require.NoError(t, err)
	_, err = leads.Create(userID, &dto.CreateLeadRequest{Name: "John Brown", Status: models.LeadStatusNew})
	require.NoError(t, err)

	got, total, err := leads.List(userID, models.LeadStatusQualified, "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane Smith", got[0].Name)

	got, total, err = leads.List(userID, "", "smith", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane Smith", got[0].Name)
}

package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/canberkoz/leadboard-backend/internal/config"
	"github.com/canberkoz/leadboard-backend/internal/database"
	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "leadboard_test.db")
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dbPath,
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		CSVImportMaxRows: 100,
	}
}

// registerUser provisions a user+profile pair and returns the user id.
func registerUser(t *testing.T, auth *AuthService, email string) uuid.UUID {
	t.Helper()

	resp, err := auth.Register(&dto.RegisterRequest{
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return resp.User.ID
}

func strPtr(s string) *string { return &s }

package services

import (
	"io"
	"testing"

	"github.com/pin-point/server-go/config"
	"github.com/pin-point/server-go/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database and migrates the full
// schema. TranslateError is on so the unique-index path behaves the
// same as against Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "could not open test DB")

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Pin{},
		&models.Endorsement{},
		&models.WatchZone{},
	)
	require.NoError(t, err, "migration failed")
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		MinRadiusMeters: 5,
		MaxRadiusMeters: 200,
		MaxZonesPerUser: 2,
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

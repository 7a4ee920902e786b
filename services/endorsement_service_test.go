package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pin-point/server-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPin(t *testing.T, db *gorm.DB, authorID uint) *models.Pin {
	t.Helper()
	pin := &models.Pin{
		ID:        uuid.NewString(),
		Category:  models.CategoryPolice,
		Latitude:  36.9741,
		Longitude: -122.0308,
		AuthorID:  authorID,
	}
	require.NoError(t, db.Create(pin).Error)
	return pin
}

func pinScore(t *testing.T, db *gorm.DB, pinID string) int {
	t.Helper()
	var pin models.Pin
	require.NoError(t, db.First(&pin, "id = ?", pinID).Error)
	return pin.Score
}

func TestEndorseIncrementsScore(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "author")
	voter := seedUser(t, db, "voter")
	pin := seedPin(t, db, author.ID)
	svc := NewEndorsementService(db, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Endorse(ctx, voter.ID, pin.ID))

	assert.Equal(t, 1, pinScore(t, db, pin.ID))
	endorsed, err := svc.IsEndorsed(ctx, voter.ID, pin.ID)
	require.NoError(t, err)
	assert.True(t, endorsed)
}

func TestEndorseTwiceIsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "author")
	voter := seedUser(t, db, "voter")
	pin := seedPin(t, db, author.ID)
	svc := NewEndorsementService(db, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Endorse(ctx, voter.ID, pin.ID))
	err := svc.Endorse(ctx, voter.ID, pin.ID)
	assert.ErrorIs(t, err, ErrDuplicate)

	// Score moved by exactly one, not two.
	assert.Equal(t, 1, pinScore(t, db, pin.ID))
}

func TestEndorseMissingPin(t *testing.T) {
	db := setupTestDB(t)
	voter := seedUser(t, db, "voter")
	svc := NewEndorsementService(db, testLogger())

	err := svc.Endorse(context.Background(), voter.ID, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRetractDecrementsScore(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "author")
	voter := seedUser(t, db, "voter")
	pin := seedPin(t, db, author.ID)
	svc := NewEndorsementService(db, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Endorse(ctx, voter.ID, pin.ID))
	require.NoError(t, svc.Retract(ctx, voter.ID, pin.ID))

	assert.Equal(t, 0, pinScore(t, db, pin.ID))
	endorsed, err := svc.IsEndorsed(ctx, voter.ID, pin.ID)
	require.NoError(t, err)
	assert.False(t, endorsed)
}

func TestRetractWithoutEndorsement(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "author")
	voter := seedUser(t, db, "voter")
	pin := seedPin(t, db, author.ID)
	svc := NewEndorsementService(db, testLogger())

	err := svc.Retract(context.Background(), voter.ID, pin.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, pinScore(t, db, pin.ID), "score must be untouched")
}

func TestScoreMatchesLedgerRowCount(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "author")
	pin := seedPin(t, db, author.ID)
	svc := NewEndorsementService(db, testLogger())
	ctx := context.Background()

	voters := []models.User{
		seedUser(t, db, "voter1"),
		seedUser(t, db, "voter2"),
		seedUser(t, db, "voter3"),
	}
	for _, v := range voters {
		require.NoError(t, svc.Endorse(ctx, v.ID, pin.ID))
	}
	require.NoError(t, svc.Retract(ctx, voters[1].ID, pin.ID))

	var rows int64
	require.NoError(t, db.Model(&models.Endorsement{}).Where("pin_id = ?", pin.ID).Count(&rows).Error)

	score, err := svc.Score(ctx, pin.ID)
	require.NoError(t, err)
	assert.EqualValues(t, rows, score, "cached score must equal ledger row count")
	assert.Equal(t, 2, score)
}

func TestScoreMissingPin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEndorsementService(db, testLogger())

	_, err := svc.Score(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEndorsedBy(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "author")
	voter := seedUser(t, db, "voter")
	first := seedPin(t, db, author.ID)
	second := seedPin(t, db, author.ID)
	svc := NewEndorsementService(db, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Endorse(ctx, voter.ID, first.ID))
	require.NoError(t, svc.Endorse(ctx, voter.ID, second.ID))

	endorsed, err := svc.ListEndorsedBy(ctx, voter.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, endorsed)
}

func TestListEndorsedByEmpty(t *testing.T) {
	db := setupTestDB(t)
	voter := seedUser(t, db, "voter")
	svc := NewEndorsementService(db, testLogger())

	endorsed, err := svc.ListEndorsedBy(context.Background(), voter.ID)
	require.NoError(t, err)
	assert.NotNil(t, endorsed)
	assert.Empty(t, endorsed)
}

// The full client scenario: endorse, double endorse, retract, delete,
// then endorse the deleted pin.
func TestEndorsementLifecycle(t *testing.T) {
	db := setupTestDB(t)
	userA := seedUser(t, db, "userA")
	userB := seedUser(t, db, "userB")
	log := testLogger()

	watchers := NewWatcherService(db, testConfig())
	pins := NewPinService(db, testConfig(), log, watchers, &recordingDispatcher{})
	endorsements := NewEndorsementService(db, log)
	ctx := context.Background()

	pin, err := pins.CreatePin(ctx, models.CategoryPolice, 36.9741, -122.0308, userA.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, pin.Score)

	require.NoError(t, endorsements.Endorse(ctx, userB.ID, pin.ID))
	assert.Equal(t, 1, pinScore(t, db, pin.ID))

	assert.ErrorIs(t, endorsements.Endorse(ctx, userB.ID, pin.ID), ErrDuplicate)
	assert.Equal(t, 1, pinScore(t, db, pin.ID))

	require.NoError(t, endorsements.Retract(ctx, userB.ID, pin.ID))
	assert.Equal(t, 0, pinScore(t, db, pin.ID))

	require.NoError(t, pins.DeletePin(ctx, pin.ID, userA.ID))
	assert.ErrorIs(t, endorsements.Endorse(ctx, userB.ID, pin.ID), ErrNotFound)
}

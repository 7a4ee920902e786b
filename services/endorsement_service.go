package services

import (
	"context"
	"errors"

	"github.com/pin-point/server-go/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EndorsementService is the ledger of who endorsed what. The score on
// the pin row is a cache of the ledger: every endorse/retract moves
// both inside one transaction so the two can never drift.
type EndorsementService interface {
	Endorse(ctx context.Context, userID uint, pinID string) error
	Retract(ctx context.Context, userID uint, pinID string) error
	IsEndorsed(ctx context.Context, userID uint, pinID string) (bool, error)
	ListEndorsedBy(ctx context.Context, userID uint) ([]string, error)
	Score(ctx context.Context, pinID string) (int, error)
}

type endorsementService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewEndorsementService(db *gorm.DB, log *logrus.Logger) EndorsementService {
	return &endorsementService{db: db, log: log}
}

func (s *endorsementService) Endorse(ctx context.Context, userID uint, pinID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pin models.Pin
		if err := tx.First(&pin, "id = ?", pinID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		endorsement := models.Endorsement{UserID: userID, PinID: pinID}
		if err := tx.Create(&endorsement).Error; err != nil {
			// The unique index over (user_id, pin_id) is the
			// serialization point: the loser of a concurrent double
			// endorse lands here, same as a plain repeat vote.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicate
			}
			return err
		}

		_, err := applyScoreDelta(tx, pinID, 1)
		return err
	})
}

func (s *endorsementService) Retract(ctx context.Context, userID uint, pinID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND pin_id = ?", userID, pinID).
			Delete(&models.Endorsement{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		affected, err := applyScoreDelta(tx, pinID, -1)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Pin deleted between our row delete and the score update;
			// the cascade already dropped the ledger rows.
			s.log.WithFields(logrus.Fields{"pin_id": pinID, "user_id": userID}).
				Warn("retract raced a pin delete")
		}
		return nil
	})
}

func (s *endorsementService) IsEndorsed(ctx context.Context, userID uint, pinID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Endorsement{}).
		Where("user_id = ? AND pin_id = ?", userID, pinID).
		Count(&count).Error
	return count > 0, err
}

func (s *endorsementService) ListEndorsedBy(ctx context.Context, userID uint) ([]string, error) {
	pinIDs := []string{}
	err := s.db.WithContext(ctx).Model(&models.Endorsement{}).
		Where("user_id = ?", userID).
		Pluck("pin_id", &pinIDs).Error
	if err != nil {
		return nil, err
	}
	return pinIDs, nil
}

func (s *endorsementService) Score(ctx context.Context, pinID string) (int, error) {
	var pin models.Pin
	if err := s.db.WithContext(ctx).Select("score").First(&pin, "id = ?", pinID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return pin.Score, nil
}

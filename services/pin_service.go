package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pin-point/server-go/config"
	"github.com/pin-point/server-go/models"
	"github.com/pin-point/server-go/notify"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PinService is the report store: create, list and delete pins, plus
// the score mutation the endorsement ledger drives.
type PinService interface {
	CreatePin(ctx context.Context, category string, lat, lng float64, authorID uint) (*models.Pin, error)
	ListPins(ctx context.Context) ([]models.Pin, error)
	DeletePin(ctx context.Context, pinID string, requesterID uint) error
	// AddScore atomically adds delta to a pin's score. A missing pin is
	// logged and swallowed: an endorsement racing a delete must not
	// fail loudly.
	AddScore(ctx context.Context, pinID string, delta int) error
}

type pinService struct {
	db         *gorm.DB
	cfg        *config.Config
	log        *logrus.Logger
	watchers   WatcherService
	dispatcher notify.Dispatcher
}

func NewPinService(db *gorm.DB, cfg *config.Config, log *logrus.Logger, watchers WatcherService, dispatcher notify.Dispatcher) PinService {
	return &pinService{db: db, cfg: cfg, log: log, watchers: watchers, dispatcher: dispatcher}
}

func validCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func (s *pinService) CreatePin(ctx context.Context, category string, lat, lng float64, authorID uint) (*models.Pin, error) {
	if !models.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	if !validCoordinates(lat, lng) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}

	pin := &models.Pin{
		ID:        uuid.NewString(),
		Category:  category,
		Latitude:  lat,
		Longitude: lng,
		AuthorID:  authorID,
	}
	if err := s.db.WithContext(ctx).Create(pin).Error; err != nil {
		return nil, err
	}

	s.notifyWatchers(ctx, pin)
	return pin, nil
}

// notifyWatchers runs the geofence evaluation for a freshly created
// pin and hands the matches to the dispatcher. Failures here never
// fail the creation; the pin is already durable.
func (s *pinService) notifyWatchers(ctx context.Context, pin *models.Pin) {
	zones, err := s.watchers.ListAllActive(ctx)
	if err != nil {
		s.log.WithError(err).WithField("pin_id", pin.ID).Warn("could not load watch zones for geofence evaluation")
		return
	}
	if matched := EvaluateZones(pin, zones); len(matched) > 0 {
		s.dispatcher.Dispatch(ctx, pin, matched)
	}
}

func (s *pinService) ListPins(ctx context.Context) ([]models.Pin, error) {
	var pins []models.Pin
	if err := s.db.WithContext(ctx).Find(&pins).Error; err != nil {
		return nil, err
	}
	return pins, nil
}

func (s *pinService) DeletePin(ctx context.Context, pinID string, requesterID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pin models.Pin
		if err := tx.First(&pin, "id = ?", pinID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if pin.AuthorID != requesterID {
			return ErrNotAuthor
		}
		if s.cfg.DeleteLockScore > 0 && pin.Score >= s.cfg.DeleteLockScore {
			return ErrDeleteLocked
		}

		// Endorsements go with the pin; stale rows would leak into
		// every later getvalidated reconcile.
		if err := tx.Where("pin_id = ?", pinID).Delete(&models.Endorsement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pin).Error
	})
}

func (s *pinService) AddScore(ctx context.Context, pinID string, delta int) error {
	affected, err := applyScoreDelta(s.db.WithContext(ctx), pinID, delta)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.log.WithFields(logrus.Fields{"pin_id": pinID, "delta": delta}).
			Warn("score update on missing pin, likely raced a delete")
	}
	return nil
}

// applyScoreDelta is the single place a pin's cached score moves. The
// CASE floors the result at zero, so a stray negative delta can never
// persist a negative score. Both the pin store and the endorsement
// ledger go through it.
func applyScoreDelta(tx *gorm.DB, pinID string, delta int) (int64, error) {
	res := tx.Model(&models.Pin{}).
		Where("id = ?", pinID).
		Update("score", gorm.Expr("CASE WHEN score + ? < 0 THEN 0 ELSE score + ? END", delta, delta))
	return res.RowsAffected, res.Error
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pin-point/server-go/config"
	"github.com/pin-point/server-go/models"
	"gorm.io/gorm"
)

// WatcherService is the watch zone registry: per-user geofenced
// subscriptions, capped per owner. Zones are immutable; the client
// models edits as delete + recreate.
type WatcherService interface {
	CreateZone(ctx context.Context, ownerID uint, category string, lat, lng, radiusMeters float64) (*models.WatchZone, error)
	DeleteZone(ctx context.Context, zoneID string, requesterID uint) error
	ListZonesFor(ctx context.Context, ownerID uint) ([]models.WatchZone, error)
	// ListAllActive feeds the geofence evaluator; it is not exposed to
	// end users.
	ListAllActive(ctx context.Context) ([]models.WatchZone, error)
}

type watcherService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewWatcherService(db *gorm.DB, cfg *config.Config) WatcherService {
	return &watcherService{db: db, cfg: cfg}
}

func (s *watcherService) CreateZone(ctx context.Context, ownerID uint, category string, lat, lng, radiusMeters float64) (*models.WatchZone, error) {
	if !models.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	if !validCoordinates(lat, lng) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}
	if radiusMeters < s.cfg.MinRadiusMeters || radiusMeters > s.cfg.MaxRadiusMeters {
		return nil, fmt.Errorf("%w: radius must be between %v and %v meters",
			ErrValidation, s.cfg.MinRadiusMeters, s.cfg.MaxRadiusMeters)
	}

	zone := &models.WatchZone{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Category:     category,
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radiusMeters,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.WatchZone{}).
			Where("owner_id = ?", ownerID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(s.cfg.MaxZonesPerUser) {
			return ErrQuotaExceeded
		}
		return tx.Create(zone).Error
	})
	if err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *watcherService) DeleteZone(ctx context.Context, zoneID string, requesterID uint) error {
	var zone models.WatchZone
	if err := s.db.WithContext(ctx).First(&zone, "id = ?", zoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if zone.OwnerID != requesterID {
		return ErrNotAuthor
	}
	return s.db.WithContext(ctx).Delete(&zone).Error
}

func (s *watcherService) ListZonesFor(ctx context.Context, ownerID uint) ([]models.WatchZone, error) {
	var zones []models.WatchZone
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

func (s *watcherService) ListAllActive(ctx context.Context) ([]models.WatchZone, error) {
	var zones []models.WatchZone
	if err := s.db.WithContext(ctx).Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

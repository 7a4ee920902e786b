package models

import (
	"time"
)

// WatchZone is a user-owned circular geofence. Zones are never updated
// in place; the client models edits as delete + recreate.
type WatchZone struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	OwnerID      uint      `json:"author_id" gorm:"not null;index"`
	Owner        User      `json:"-" gorm:"foreignKey:OwnerID"`
	Category     string    `json:"category" gorm:"not null;type:varchar(50)"`
	Latitude     float64   `json:"latitude" gorm:"not null;type:decimal(10,8)"`
	Longitude    float64   `json:"longitude" gorm:"not null;type:decimal(11,8)"`
	RadiusMeters float64   `json:"radius" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

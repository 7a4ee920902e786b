package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Password  string         `gorm:"not null" json:"-"` // Don't expose password in JSON

	// Expo push tokens registered by the client, one per device. Read
	// by the notification dispatch collaborator, never by this core.
	PushTokens pq.StringArray `gorm:"type:text[]" json:"-"`

	Pins          []Pin          `json:"-" gorm:"foreignKey:AuthorID"`
	Endorsements  []Endorsement  `json:"-" gorm:"foreignKey:UserID"`
	WatchZones    []WatchZone    `json:"-" gorm:"foreignKey:OwnerID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}

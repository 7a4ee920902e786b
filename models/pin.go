package models

import (
	"time"
)

// Pin is a user-submitted, categorized, geolocated observation.
// Everything except Score is immutable after creation; Score is only
// touched by the endorsement ledger.
type Pin struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Category  string    `json:"category" gorm:"not null;type:varchar(50)"`
	Latitude  float64   `json:"latitude" gorm:"not null;type:decimal(10,8)"`
	Longitude float64   `json:"longitude" gorm:"not null;type:decimal(11,8)"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	Score     int       `json:"score" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Endorsements []Endorsement `json:"-" gorm:"foreignKey:PinID"`
}

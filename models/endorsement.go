package models

import (
	"time"
)

// Endorsement is one user's vote of confidence on one pin. The unique
// index over (user_id, pin_id) is what makes a concurrent double
// endorse lose at the database rather than in process.
type Endorsement struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_endorsements_user_pin"`
	PinID     string    `gorm:"column:pin_id;not null;type:uuid;uniqueIndex:idx_endorsements_user_pin"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
	Pin  Pin  `gorm:"foreignKey:PinID"`
}

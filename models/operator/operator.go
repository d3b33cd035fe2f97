package operator

import (
	"time"

	"emptyleg-marketplace/models/user"
)

// Operator is the business profile linked one-to-one with a user row. The
// TotalFlights counter is maintained inside the same transaction as the
// flight insert/cancel that changes it.
type Operator struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	CompanyName  string `gorm:"type:varchar(255);not null" json:"company_name"`
	TotalFlights int    `gorm:"not null;default:0" json:"total_flights"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

package customer

import (
	"time"

	"emptyleg-marketplace/models/user"
)

// Customer is the traveller profile linked one-to-one with a user row.
type Customer struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	FirstName string `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(255);not null" json:"last_name"`
	Phone     string `gorm:"type:varchar(20)" json:"phone,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

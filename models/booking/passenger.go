package booking

import (
	"time"
)

// Passenger holds per-traveller detail attached to a booking. Pure child
// record, removed with its booking.
type Passenger struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID uint `gorm:"not null;index" json:"booking_id"`

	FullName       string `gorm:"type:varchar(255);not null" json:"full_name"`
	DocumentType   string `gorm:"type:varchar(50);not null" json:"document_type"`
	DocumentNumber string `gorm:"type:varchar(100);not null" json:"document_number"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

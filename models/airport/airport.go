package airport

import (
	"time"
)

// AirportStatus is the moderation state of an airport descriptor.
type AirportStatus string

const (
	AirportStatusPending  AirportStatus = "pending"
	AirportStatusApproved AirportStatus = "approved"
	AirportStatusRejected AirportStatus = "rejected"
)

func (as AirportStatus) String() string {
	return string(as)
}

func (as AirportStatus) IsValid() bool {
	switch as {
	case AirportStatusPending, AirportStatusApproved, AirportStatusRejected:
		return true
	default:
		return false
	}
}

// CanBeReviewed returns true if an admin approve/reject decision applies.
func (as AirportStatus) CanBeReviewed() bool {
	return as == AirportStatusPending
}

// Airport is a reusable origin/destination descriptor. Seeded rows arrive
// approved; operator submissions arrive pending and go through the
// moderation queue. Codes are unique only among approved rows, so a
// rejected code can be resubmitted.
type Airport struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Code    string `gorm:"type:varchar(10);not null;index" json:"code"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	City    string `gorm:"type:varchar(255);not null" json:"city"`
	Country string `gorm:"type:varchar(255);not null" json:"country"`

	Latitude  *float64 `gorm:"type:numeric(9,6)" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"type:numeric(9,6)" json:"longitude,omitempty"`

	Status AirportStatus `gorm:"type:varchar(20);not null;index;default:pending" json:"status"`

	CreatedByID  *uint      `gorm:"index" json:"created_by_id,omitempty"`
	ReviewedByID *uint      `gorm:"index" json:"reviewed_by_id,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

package notification

import (
	"time"
)

// NotificationType tags what a notification is about.
type NotificationType string

const (
	TypeFlightSubmitted  NotificationType = "flight_submitted"
	TypeFlightApproved   NotificationType = "flight_approved"
	TypeFlightDenied     NotificationType = "flight_denied"
	TypeFlightCancelled  NotificationType = "flight_cancelled"
	TypeBookingConfirmed NotificationType = "booking_confirmed"
	TypeBookingCancelled NotificationType = "booking_cancelled"
	TypeAirportApproved  NotificationType = "airport_approved"
	TypeAirportRejected  NotificationType = "airport_rejected"
)

// Notification is a user-facing message created by the status engines as a
// side effect of transitions. Only the owning user may mark it read.
type Notification struct {
	ID       uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint  `gorm:"not null;index" json:"user_id"`
	FlightID *uint `gorm:"index" json:"flight_id,omitempty"`

	Type    NotificationType `gorm:"type:varchar(50);not null" json:"type"`
	Title   string           `gorm:"type:varchar(255);not null" json:"title"`
	Message string           `gorm:"type:text;not null" json:"message"`
	IsRead  bool             `gorm:"not null;default:false;index" json:"is_read"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

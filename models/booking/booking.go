package booking

import (
	"time"

	"emptyleg-marketplace/models/customer"
	"emptyleg-marketplace/models/flight"
)

// Booking is a customer's reservation against one flight. Reference is the
// customer-facing code; the numeric id stays internal.
type Booking struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string `gorm:"type:varchar(36);not null;uniqueIndex" json:"reference"`

	FlightID uint          `gorm:"not null;index" json:"flight_id"`
	Flight   flight.Flight `gorm:"foreignKey:FlightID" json:"flight"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	PassengerCount int     `gorm:"not null" json:"passenger_count"`
	TotalAmount    float64 `gorm:"type:numeric(12,2);not null" json:"total_amount"`

	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:pending" json:"payment_status"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:confirmed" json:"status"`

	Passengers []Passenger `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"passengers"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

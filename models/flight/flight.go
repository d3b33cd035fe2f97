package flight

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"emptyleg-marketplace/models/operator"
)

// Flight is the central listing entity. Origin/destination descriptors are
// duplicated onto the row instead of joined so list queries stay flat.
type Flight struct {
	ID         uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	OperatorID uint              `gorm:"not null;index" json:"operator_id"`
	Operator   operator.Operator `gorm:"foreignKey:OperatorID" json:"operator"`

	AircraftModel string `gorm:"type:varchar(255);not null" json:"aircraft_model"`

	OriginCode    string `gorm:"type:varchar(10);not null" json:"origin_code"`
	OriginName    string `gorm:"type:varchar(255);not null" json:"origin_name"`
	OriginCity    string `gorm:"type:varchar(255);not null;index" json:"origin_city"`
	OriginCountry string `gorm:"type:varchar(255);not null" json:"origin_country"`

	DestinationCode    string `gorm:"type:varchar(10);not null" json:"destination_code"`
	DestinationName    string `gorm:"type:varchar(255);not null" json:"destination_name"`
	DestinationCity    string `gorm:"type:varchar(255);not null;index" json:"destination_city"`
	DestinationCountry string `gorm:"type:varchar(255);not null" json:"destination_country"`

	DepartureDatetime time.Time `gorm:"not null;index" json:"departure_datetime"`
	ArrivalDatetime   time.Time `gorm:"not null" json:"arrival_datetime"`

	MarketPrice   float64 `gorm:"type:numeric(12,2);not null" json:"market_price"`
	EmptyLegPrice float64 `gorm:"type:numeric(12,2);not null" json:"empty_leg_price"`

	TotalSeats     int `gorm:"not null" json:"total_seats"`
	AvailableSeats int `gorm:"not null" json:"available_seats"`

	Status      FlightStatus `gorm:"type:varchar(20);not null;index;default:pending" json:"status"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	Images      StringSlice  `gorm:"type:json" json:"images"`

	ReviewedByID *uint      `gorm:"index" json:"reviewed_by_id,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// StringSlice is a custom type to handle JSON serialization for PostgreSQL
type StringSlice []string

// Scan implements the Scanner interface for database deserialization
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver Valuer interface for database serialization
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}

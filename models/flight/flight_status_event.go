package flight

import (
	"time"
)

// FlightStatusEvent records one transition of a flight's status, with the
// user who caused it. Append-only.
type FlightStatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	FlightID uint   `gorm:"not null;index" json:"flight_id"`
	Flight   Flight `gorm:"foreignKey:FlightID" json:"-"`

	Status    FlightStatus `gorm:"type:varchar(20);not null" json:"status"`
	ActorID   *uint        `json:"actor_id,omitempty"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the FlightStatusEvent model
func (FlightStatusEvent) TableName() string {
	return "flight_status_events"
}

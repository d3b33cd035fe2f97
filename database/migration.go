package database

import (
	"fmt"

	"emptyleg-marketplace/models/airport"
	"emptyleg-marketplace/models/booking"
	"emptyleg-marketplace/models/customer"
	"emptyleg-marketplace/models/flight"
	"emptyleg-marketplace/models/log"
	"emptyleg-marketplace/models/notification"
	"emptyleg-marketplace/models/operator"
	"emptyleg-marketplace/models/user"

	"gorm.io/gorm"
)

// Migrate auto-migrates all models in dependency order, then adds the
// lookup indexes the ORM tags do not cover.
func Migrate(db *gorm.DB) error {
	models := []interface{}{
		// Stage 1: accounts
		&user.User{},
		&user.RefreshToken{},
		&customer.Customer{},
		&operator.Operator{},

		// Stage 2: inventory
		&airport.Airport{},
		&flight.Flight{},
		&flight.FlightStatusEvent{},

		// Stage 3: commerce
		&booking.Booking{},
		&booking.Passenger{},
		&notification.Notification{},

		// Logging
		&log.Log{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return createIndexes(db)
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_flights_status_departure ON flights(status, departure_datetime)",
		"CREATE INDEX IF NOT EXISTS idx_flights_origin_city ON flights(origin_city)",
		"CREATE INDEX IF NOT EXISTS idx_flights_destination_city ON flights(destination_city)",
		"CREATE INDEX IF NOT EXISTS idx_airports_status_code ON airports(status, code)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_customer_id ON bookings(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_flight_id ON bookings(flight_id)",
		"CREATE INDEX IF NOT EXISTS idx_notifications_user_read ON notifications(user_id, is_read)",
		"CREATE INDEX IF NOT EXISTS idx_flight_status_events_flight_id ON flight_status_events(flight_id)",
		"CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)",
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

package flight

import (
	"time"

	flightModel "emptyleg-marketplace/models/flight"
	"emptyleg-marketplace/types"
)

// FlightCreateRequest is the operator payload for listing an empty leg.
type FlightCreateRequest struct {
	AircraftModel string `json:"aircraft_model" validate:"required,max=255"`

	OriginCode    string `json:"origin_code" validate:"required,max=10"`
	OriginName    string `json:"origin_name" validate:"required,max=255"`
	OriginCity    string `json:"origin_city" validate:"required,max=255"`
	OriginCountry string `json:"origin_country" validate:"required,max=255"`

	DestinationCode    string `json:"destination_code" validate:"required,max=10"`
	DestinationName    string `json:"destination_name" validate:"required,max=255"`
	DestinationCity    string `json:"destination_city" validate:"required,max=255"`
	DestinationCountry string `json:"destination_country" validate:"required,max=255"`

	DepartureDatetime time.Time `json:"departure_datetime" validate:"required"`
	ArrivalDatetime   time.Time `json:"arrival_datetime" validate:"required"`

	MarketPrice   float64 `json:"market_price" validate:"required,gt=0"`
	EmptyLegPrice float64 `json:"empty_leg_price" validate:"required,gt=0"`

	TotalSeats     int `json:"total_seats" validate:"required,gt=0"`
	AvailableSeats int `json:"available_seats" validate:"required,gt=0"`

	Description string   `json:"description" validate:"omitempty"`
	Images      []string `json:"images" validate:"omitempty,dive,max=2048"`
}

func (r FlightCreateRequest) Validate() error {
	if err := types.ValidateStruct(r); err != nil {
		return err
	}
	if r.EmptyLegPrice > r.MarketPrice {
		return types.NewValidationError("empty_leg_price must not exceed market_price")
	}
	if r.AvailableSeats > r.TotalSeats {
		return types.NewValidationError("available_seats must not exceed total_seats")
	}
	if !r.DepartureDatetime.After(time.Now()) {
		return types.NewValidationError("departure_datetime must be in the future")
	}
	if !r.ArrivalDatetime.After(r.DepartureDatetime) {
		return types.NewValidationError("arrival_datetime must be after departure_datetime")
	}
	return nil
}

// FlightReviewRequest is the admin approve/reject decision payload.
type FlightReviewRequest struct {
	Status string `json:"status" validate:"required"`
}

// Decision normalizes the requested status and ensures it is a review
// outcome, not an arbitrary status write.
func (r FlightReviewRequest) Decision() (flightModel.FlightStatus, error) {
	status, err := flightModel.ParseFlightStatus(r.Status)
	if err != nil {
		return "", types.NewValidationError("%v", err)
	}
	if status != flightModel.FlightStatusApproved && status != flightModel.FlightStatusRejected {
		return "", types.NewValidationError("status must be approved or rejected")
	}
	return status, nil
}

// FlightListQuery carries the optional narrowing filters of a list call.
// The visibility policy is applied on top of these, never overridden by them.
type FlightListQuery struct {
	OriginCity      string
	DestinationCity string
	Date            string
	Status          string
	Passengers      int
	Page            int
	Limit           int
}

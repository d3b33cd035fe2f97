package booking

import (
	"emptyleg-marketplace/types"
)

// PassengerInput is one traveller on a booking request.
type PassengerInput struct {
	FullName       string `json:"full_name" validate:"required,max=255"`
	DocumentType   string `json:"document_type" validate:"required,max=50"`
	DocumentNumber string `json:"document_number" validate:"required,max=100"`
}

// BookingCreateRequest reserves seats on an approved flight. The passenger
// list length must match passenger_count.
type BookingCreateRequest struct {
	FlightID       uint             `json:"flight_id" validate:"required"`
	PassengerCount int              `json:"passenger_count" validate:"required,gt=0"`
	Passengers     []PassengerInput `json:"passengers" validate:"required,min=1,dive"`
}

func (r BookingCreateRequest) Validate() error {
	if err := types.ValidateStruct(r); err != nil {
		return err
	}
	if len(r.Passengers) != r.PassengerCount {
		return types.NewValidationError("passenger_count must match the number of passenger records")
	}
	return nil
}

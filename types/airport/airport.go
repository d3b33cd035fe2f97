package airport

import (
	"emptyleg-marketplace/types"
)

// AirportSubmitRequest is the operator payload for a custom airport.
type AirportSubmitRequest struct {
	Code      string   `json:"code" validate:"required,min=3,max=10,alphanum"`
	Name      string   `json:"name" validate:"required,max=255"`
	City      string   `json:"city" validate:"required,max=255"`
	Country   string   `json:"country" validate:"required,max=255"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (r AirportSubmitRequest) Validate() error {
	return types.ValidateStruct(r)
}

// AirportReviewRequest carries the optional coordinates an admin supplies at
// approval time when the submission had none.
type AirportReviewRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (r AirportReviewRequest) Validate() error {
	return types.ValidateStruct(r)
}

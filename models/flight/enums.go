package flight

import "fmt"

// FlightStatus is the flight lifecycle state. "approved" is the canonical
// name for a publicly listable flight; "available" is accepted as an input
// alias, as is "declined" for "rejected".
type FlightStatus string

const (
	FlightStatusPending   FlightStatus = "pending"
	FlightStatusApproved  FlightStatus = "approved"
	FlightStatusRejected  FlightStatus = "rejected"
	FlightStatusBooked    FlightStatus = "booked"
	FlightStatusCompleted FlightStatus = "completed"
	FlightStatusCancelled FlightStatus = "cancelled"
)

func (fs FlightStatus) String() string {
	return string(fs)
}

func (fs FlightStatus) IsValid() bool {
	switch fs {
	case FlightStatusPending, FlightStatusApproved, FlightStatusRejected,
		FlightStatusBooked, FlightStatusCompleted, FlightStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transition is possible.
func (fs FlightStatus) IsTerminal() bool {
	return fs == FlightStatusCompleted || fs == FlightStatusCancelled
}

// CanBeReviewed returns true if an admin approve/reject decision applies.
func (fs FlightStatus) CanBeReviewed() bool {
	return fs == FlightStatusPending
}

// CanBeCancelled returns true if the flight may still be cancelled.
func (fs FlightStatus) CanBeCancelled() bool {
	return !fs.IsTerminal()
}

// IsBookable returns true if seats on the flight can be sold.
func (fs FlightStatus) IsBookable() bool {
	return fs == FlightStatusApproved
}

// ParseFlightStatus normalizes an externally supplied status value,
// resolving the legacy aliases.
func ParseFlightStatus(s string) (FlightStatus, error) {
	switch s {
	case "available":
		return FlightStatusApproved, nil
	case "declined":
		return FlightStatusRejected, nil
	}

	fs := FlightStatus(s)
	if !fs.IsValid() {
		return "", fmt.Errorf("unknown flight status %q", s)
	}
	return fs, nil
}

// GetAllFlightStatuses returns all valid flight statuses
func GetAllFlightStatuses() []FlightStatus {
	return []FlightStatus{
		FlightStatusPending,
		FlightStatusApproved,
		FlightStatusRejected,
		FlightStatusBooked,
		FlightStatusCompleted,
		FlightStatusCancelled,
	}
}

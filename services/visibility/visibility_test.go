package visibility

import (
	"testing"
	"time"

	"emptyleg-marketplace/constants"
	"emptyleg-marketplace/models/flight"
	"emptyleg-marketplace/repository"
	"emptyleg-marketplace/types"

	"github.com/stretchr/testify/assert"
)

func TestPolicyFor_Selection(t *testing.T) {
	assert.Equal(t, "customer", PolicyFor(nil, 0).Name())
	assert.Equal(t, "customer", PolicyFor(&types.AuthUser{UserID: 1, Role: constants.RoleCustomer}, 0).Name())
	assert.Equal(t, "operator", PolicyFor(&types.AuthUser{UserID: 2, Role: constants.RoleOperator}, 7).Name())
	assert.Equal(t, "admin", PolicyFor(&types.AuthUser{UserID: 3, Role: constants.RoleAdmin}, 0).Name())
	assert.Equal(t, "admin", PolicyFor(&types.AuthUser{UserID: 4, Role: constants.RoleSuperAdmin}, 0).Name())
}

func TestCustomerPolicy_OverridesRequestedStatus(t *testing.T) {
	// A customer asking for pending flights must still only get approved
	// ones; filters narrow visibility, they never widen it.
	in := repository.FlightFilter{
		Statuses:   []flight.FlightStatus{flight.FlightStatusPending},
		OriginCity: "Geneva",
	}

	out := CustomerPolicy{}.Apply(in)

	assert.Equal(t, []flight.FlightStatus{flight.FlightStatusApproved}, out.Statuses)
	assert.NotNil(t, out.DepartureAfter)
	assert.WithinDuration(t, time.Now(), *out.DepartureAfter, time.Second)
	assert.Equal(t, "Geneva", out.OriginCity)
}

func TestCustomerPolicy_CanView(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-time.Hour)

	assert.True(t, CustomerPolicy{}.CanView(&flight.Flight{
		Status:            flight.FlightStatusApproved,
		DepartureDatetime: future,
	}))
	assert.False(t, CustomerPolicy{}.CanView(&flight.Flight{
		Status:            flight.FlightStatusPending,
		DepartureDatetime: future,
	}))
	// Departed but not yet swept to completed: still hidden.
	assert.False(t, CustomerPolicy{}.CanView(&flight.Flight{
		Status:            flight.FlightStatusApproved,
		DepartureDatetime: past,
	}))
}

func TestOperatorPolicy_PinsOwnFlights(t *testing.T) {
	policy := OperatorPolicy{OperatorID: 42}

	out := policy.Apply(repository.FlightFilter{
		Statuses: []flight.FlightStatus{flight.FlightStatusRejected},
	})

	assert.NotNil(t, out.OperatorID)
	assert.Equal(t, uint(42), *out.OperatorID)
	// Operators keep their requested status filter and see past flights.
	assert.Equal(t, []flight.FlightStatus{flight.FlightStatusRejected}, out.Statuses)
	assert.Nil(t, out.DepartureAfter)

	assert.True(t, policy.CanView(&flight.Flight{OperatorID: 42, Status: flight.FlightStatusPending}))
	assert.False(t, policy.CanView(&flight.Flight{OperatorID: 7, Status: flight.FlightStatusApproved}))
}

func TestAdminPolicy_Passthrough(t *testing.T) {
	in := repository.FlightFilter{
		Statuses: []flight.FlightStatus{flight.FlightStatusCancelled},
	}

	out := AdminPolicy{}.Apply(in)

	assert.Equal(t, in, out)
	assert.True(t, AdminPolicy{}.CanView(&flight.Flight{Status: flight.FlightStatusRejected}))
}

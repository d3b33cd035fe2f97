// Package visibility owns the role-based predicate deciding which flights a
// caller may see. The policy is a baseline every list query starts from;
// caller-supplied filters only ever narrow it.
package visibility

import (
	"time"

	"emptyleg-marketplace/constants"
	"emptyleg-marketplace/models/flight"
	"emptyleg-marketplace/repository"
	"emptyleg-marketplace/types"
)

// Policy narrows a flight filter to what one role is allowed to see, and
// answers the same question for a single flight.
type Policy interface {
	Name() string
	Apply(f repository.FlightFilter) repository.FlightFilter
	CanView(fl *flight.Flight) bool
}

// PolicyFor selects the policy for a caller. Anonymous callers and
// customers share the public policy. operatorID must be the id of the
// caller's operator profile when the caller is an operator; it is ignored
// otherwise.
func PolicyFor(caller *types.AuthUser, operatorID uint) Policy {
	switch {
	case caller == nil:
		return CustomerPolicy{}
	case constants.IsAdminRole(caller.Role):
		return AdminPolicy{}
	case caller.Role == constants.RoleOperator:
		return OperatorPolicy{OperatorID: operatorID}
	default:
		return CustomerPolicy{}
	}
}

// CustomerPolicy shows only approved flights that have not yet departed.
// The departure check is independent of status on purpose: a flight the
// completion sweep has not yet touched must still drop out of public lists
// the moment its departure passes.
type CustomerPolicy struct{}

func (CustomerPolicy) Name() string { return "customer" }

func (CustomerPolicy) Apply(f repository.FlightFilter) repository.FlightFilter {
	now := time.Now()
	f.Statuses = []flight.FlightStatus{flight.FlightStatusApproved}
	f.DepartureAfter = &now
	return f
}

func (CustomerPolicy) CanView(fl *flight.Flight) bool {
	return fl.Status == flight.FlightStatusApproved && fl.DepartureDatetime.After(time.Now())
}

// OperatorPolicy shows the operator's own flights in every status, so
// pending and rejected listings stay visible to their owner.
type OperatorPolicy struct {
	OperatorID uint
}

func (OperatorPolicy) Name() string { return "operator" }

func (p OperatorPolicy) Apply(f repository.FlightFilter) repository.FlightFilter {
	id := p.OperatorID
	f.OperatorID = &id
	f.DepartureAfter = nil
	return f
}

func (p OperatorPolicy) CanView(fl *flight.Flight) bool {
	return fl.OperatorID == p.OperatorID
}

// AdminPolicy shows everything. A status filter supplied by the admin is
// kept as-is; an empty one means every status.
type AdminPolicy struct{}

func (AdminPolicy) Name() string { return "admin" }

func (AdminPolicy) Apply(f repository.FlightFilter) repository.FlightFilter {
	return f
}

func (AdminPolicy) CanView(fl *flight.Flight) bool { return true }

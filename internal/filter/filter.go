// Package filter narrows a flight-record set by exact-match criteria.
//
// Constraints are applied one at a time, each against the set produced by
// the previous one, and emptiness is checked after every single constraint.
// That ordering is what makes the error message name the constraint that
// actually emptied the set rather than whichever happened to run last.
package filter

import (
	"fmt"
	"strconv"

	"github.com/mohaimenhasan/flight-delay/pkg/models"
)

// Criteria holds the optional equality constraints. Empty strings and nil
// pointers mean "no restriction on this field". Applying any subset of
// constraints is commutative: order never changes the surviving set, only
// which constraint gets blamed when the set goes empty.
type Criteria struct {
	Origin       string
	Destination  string
	Airline      string
	CarrierGroup *int
	FlightType   string
	Scheduled    *bool
	Charter      *bool
}

// IsZero reports whether no constraints are set.
func (c Criteria) IsZero() bool {
	return c.Origin == "" && c.Destination == "" && c.Airline == "" &&
		c.CarrierGroup == nil && c.FlightType == "" &&
		c.Scheduled == nil && c.Charter == nil
}

// EmptyResultError reports that a single constraint reduced the working set
// to zero records. Field and Value identify the offending constraint.
type EmptyResultError struct {
	Field string
	Value string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no records match %s=%s", e.Field, e.Value)
}

// constraint is one pending equality check with its diagnostic identity.
type constraint struct {
	field string
	value string
	match func(models.FlightRecord) bool
}

// Apply returns the subset of records satisfying every present constraint.
// The input slice is never mutated; the result is a fresh slice. If any
// single constraint empties the working set, Apply stops there and returns
// an *EmptyResultError naming it.
func Apply(records []models.FlightRecord, c Criteria) ([]models.FlightRecord, error) {
	working := make([]models.FlightRecord, len(records))
	copy(working, records)

	for _, con := range c.constraints() {
		next := working[:0]
		for _, r := range working {
			if con.match(r) {
				next = append(next, r)
			}
		}
		if len(next) == 0 {
			return nil, &EmptyResultError{Field: con.field, Value: con.value}
		}
		working = next
	}
	return working, nil
}

// constraints expands the present criteria into their check order. The
// order matters only for error attribution, never for the final set.
func (c Criteria) constraints() []constraint {
	var cons []constraint

	if c.Origin != "" {
		v := c.Origin
		cons = append(cons, constraint{"origin", v, func(r models.FlightRecord) bool {
			return r.Origin == v
		}})
	}
	if c.Destination != "" {
		v := c.Destination
		cons = append(cons, constraint{"destination", v, func(r models.FlightRecord) bool {
			return r.Destination == v
		}})
	}
	if c.Airline != "" {
		v := c.Airline
		cons = append(cons, constraint{"airline", v, func(r models.FlightRecord) bool {
			return r.Airline == v
		}})
	}
	if c.CarrierGroup != nil {
		v := *c.CarrierGroup
		cons = append(cons, constraint{"carrier_group", strconv.Itoa(v), func(r models.FlightRecord) bool {
			return r.CarrierGroup == v
		}})
	}
	if c.FlightType != "" {
		v := c.FlightType
		cons = append(cons, constraint{"flight_type", v, func(r models.FlightRecord) bool {
			return r.FlightType == v
		}})
	}
	if c.Scheduled != nil {
		v := *c.Scheduled
		cons = append(cons, constraint{"scheduled", formatBit(v), func(r models.FlightRecord) bool {
			return r.Scheduled == v
		}})
	}
	if c.Charter != nil {
		v := *c.Charter
		cons = append(cons, constraint{"charter", formatBit(v), func(r models.FlightRecord) bool {
			return r.Charter == v
		}})
	}
	return cons
}

// formatBit renders a flag the way the dataset stores it (0/1).
func formatBit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

package simulate

import "sort"

type EventKind string

const (
	EventBundleLoanStart     EventKind = "BUNDLE_LOAN_START"
	EventVehicleFinanceStart EventKind = "VEHICLE_FINANCE_START"
	EventLeaseRenewal        EventKind = "LEASE_RENEWAL"
	EventVehicleReplacement  EventKind = "VEHICLE_REPLACEMENT"
)

// Event fires at the top of month Month, before that month's costs are computed.
type Event struct {
	Month int       `json:"month"`
	Kind  EventKind `json:"kind"`
}

// EventSchedule is the full, ordered list of events for one run.
type EventSchedule []Event

// At returns the events due in month m, in schedule order.
func (s EventSchedule) At(m int) []Event {
	i := sort.Search(len(s), func(i int) bool { return s[i].Month >= m })
	j := i
	for j < len(s) && s[j].Month == m {
		j++
	}
	return s[i:j]
}

// Months lists the months at which kind fires.
func (s EventSchedule) Months(kind EventKind) []int {
	var out []int
	for _, e := range s {
		if e.Kind == kind {
			out = append(out, e.Month)
		}
	}
	return out
}

// buildSchedule lays out every financing event over horizonMonths.
// renewEvery is the vehicle renewal interval in months (0 = never).
func buildSchedule(horizonMonths int, hasBundle, hasVehicle bool, renewKind EventKind, renewEvery int) EventSchedule {
	var s EventSchedule
	if hasBundle {
		s = append(s, Event{Month: 0, Kind: EventBundleLoanStart})
	}
	if hasVehicle {
		s = append(s, Event{Month: 0, Kind: EventVehicleFinanceStart})
		if renewEvery > 0 {
			for m := renewEvery; m < horizonMonths; m += renewEvery {
				s = append(s, Event{Month: m, Kind: renewKind})
			}
		}
	}
	return s
}

package search

import (
	"github.com/sawaari/sawaari/pkg/transit"
)

type WindowMode string

const (
	// WindowModeExactDate requests one availability row per schedule
	// for a specific travel date
	WindowModeExactDate WindowMode = "exact-date"
	// WindowModeOpen requests every upcoming availability row per
	// schedule, today onwards
	WindowModeOpen = "open"
)

// WindowSpec is the planned shape of a candidate fetch. It carries no
// I/O of its own - the orchestrator hands it to the data access layer
// and picks the grouping strategy from the mode.
type WindowSpec struct {
	Mode WindowMode

	Source      string
	Destination string

	TransportType transit.TransportType

	// Travel date, only set in exact-date mode
	Date string
}

// PlanWindow decides the windowing strategy for an enquiry. A supplied
// date selects exact-date mode, otherwise the window is open. A type
// filter other than bus or train is ignored and all types considered.
func PlanWindow(source string, destination string, transportType string, date string) WindowSpec {
	spec := WindowSpec{
		Source:      source,
		Destination: destination,
	}

	if parsed, ok := transit.ParseTransportType(transportType); ok {
		spec.TransportType = parsed
	}

	if date != "" {
		spec.Mode = WindowModeExactDate
		spec.Date = date
	} else {
		spec.Mode = WindowModeOpen
	}

	return spec
}

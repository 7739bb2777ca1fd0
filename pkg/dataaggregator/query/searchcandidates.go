package query

import (
	"github.com/sawaari/sawaari/pkg/transit"
)

// SearchCandidates asks the data access layer for every flattened
// (schedule, availability snapshot) pair matching a journey enquiry.
// Source and Destination are matched as case-insensitive substrings of
// the station names.
//
// Date empty means an open window: every snapshot dated Today or later,
// plus one null-date row per schedule with no upcoming snapshot. Date
// set means exactly one row per schedule, the snapshot for that date
// when one exists and a null-date row otherwise.
type SearchCandidates struct {
	Source      string
	Destination string

	TransportType transit.TransportType

	Date  string
	Today string
}

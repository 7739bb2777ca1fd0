package search

import (
	"github.com/jinzhu/copier"
	"github.com/sawaari/sawaari/pkg/transit"
	"golang.org/x/exp/slices"
)

// GroupCandidates folds raw (schedule, snapshot) rows into one draft
// SearchResult per distinct schedule. Fares and vehicle classes are
// filled in by the orchestrator afterwards.
//
// Exact-date mode keeps the first row seen for each schedule - the data
// access layer already promises at most one, this is the safety net -
// and stamps every draft with the requested travel date no matter what
// the underlying snapshot says.
//
// Open mode accumulates every upcoming dated row into a per-schedule
// date list (idempotent on the date string), synthesizes a default
// today entry for a null-date row only while the schedule has no
// entries yet, sorts each list ascending and takes the earliest entry
// as the representative snapshot.
func GroupCandidates(rows []transit.CandidateRow, spec WindowSpec, today string) []transit.SearchResult {
	if spec.Mode == WindowModeExactDate {
		return groupExactDate(rows, spec.Date)
	}

	return groupOpen(rows, today)
}

func groupExactDate(rows []transit.CandidateRow, requestedDate string) []transit.SearchResult {
	seen := map[string]bool{}
	results := []transit.SearchResult{}

	for _, row := range rows {
		if seen[row.ScheduleID] {
			continue
		}
		seen[row.ScheduleID] = true

		result := draftFromRow(row)
		result.Date = requestedDate
		result.SeatsTotal = intOrDefault(row.SeatsTotal, transit.DefaultSeatsTotal)
		result.SeatsBooked = intOrDefault(row.SeatsBooked, transit.DefaultSeatsBooked)
		result.SeatsAvailable = intOrDefault(row.SeatsAvailable, result.SeatsTotal-result.SeatsBooked)

		results = append(results, result)
	}

	return results
}

func groupOpen(rows []transit.CandidateRow, today string) []transit.SearchResult {
	drafts := map[string]*transit.SearchResult{}
	var order []string

	for _, row := range rows {
		draft, exists := drafts[row.ScheduleID]
		if !exists {
			result := draftFromRow(row)
			draft = &result

			drafts[row.ScheduleID] = draft
			order = append(order, row.ScheduleID)
		}

		if row.Date != nil {
			if *row.Date < today {
				continue
			}

			alreadyListed := slices.ContainsFunc(draft.AvailableDates, func(entry transit.DateEntry) bool {
				return entry.Date == *row.Date
			})
			if alreadyListed {
				continue
			}

			entry := transit.DateEntry{
				Date:        *row.Date,
				SeatsTotal:  intOrDefault(row.SeatsTotal, transit.DefaultSeatsTotal),
				SeatsBooked: intOrDefault(row.SeatsBooked, transit.DefaultSeatsBooked),
			}
			entry.SeatsAvailable = intOrDefault(row.SeatsAvailable, entry.SeatsTotal-entry.SeatsBooked)

			draft.AvailableDates = append(draft.AvailableDates, entry)
		} else if len(draft.AvailableDates) == 0 {
			// No snapshot inside the window: assume the default
			// capacity for today. Deliberately not retried once any
			// dated entry exists for the schedule.
			draft.AvailableDates = append(draft.AvailableDates, transit.DateEntry{
				Date:           today,
				SeatsTotal:     transit.DefaultSeatsTotal,
				SeatsBooked:    transit.DefaultSeatsBooked,
				SeatsAvailable: transit.DefaultSeatsTotal - transit.DefaultSeatsBooked,
			})
		}
	}

	results := make([]transit.SearchResult, 0, len(order))
	for _, scheduleID := range order {
		draft := drafts[scheduleID]

		// Every upcoming row for this schedule was in the past; drop it
		if len(draft.AvailableDates) == 0 {
			continue
		}

		slices.SortFunc(draft.AvailableDates, func(a, b transit.DateEntry) int {
			if a.Date < b.Date {
				return -1
			} else if a.Date > b.Date {
				return 1
			}
			return 0
		})

		earliest := draft.AvailableDates[0]
		draft.Date = earliest.Date
		draft.SeatsTotal = earliest.SeatsTotal
		draft.SeatsBooked = earliest.SeatsBooked
		draft.SeatsAvailable = earliest.SeatsAvailable

		results = append(results, *draft)
	}

	return results
}

func draftFromRow(row transit.CandidateRow) transit.SearchResult {
	var result transit.SearchResult
	copier.Copy(&result, &row)

	return result
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}

	return *value
}

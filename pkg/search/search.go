package search

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sawaari/sawaari/pkg/dataaggregator"
	"github.com/sawaari/sawaari/pkg/dataaggregator/query"
	"github.com/sawaari/sawaari/pkg/transit"
	"github.com/sawaari/sawaari/pkg/util"

	iso8601 "github.com/senseyeio/duration"
)

// ErrMissingLocation is returned for an enquiry without both a source
// and a destination. The HTTP layer reports it as a client error.
var ErrMissingLocation = errors.New("source and destination are required")

// CandidateFetcher is the data access seam of the engine: everything
// else is pure computation over the rows it returns.
type CandidateFetcher interface {
	FetchCandidates(q query.SearchCandidates) ([]transit.CandidateRow, error)
}

// AggregatorFetcher resolves candidate rows through the global data
// aggregator, normally ending up at the database lookup source.
type AggregatorFetcher struct{}

func (AggregatorFetcher) FetchCandidates(q query.SearchCandidates) ([]transit.CandidateRow, error) {
	return dataaggregator.Lookup[[]transit.CandidateRow](q)
}

// Engine answers "what runs between these two places and what does it
// cost". It holds no state between queries; concurrent searches need no
// coordination.
type Engine struct {
	Fetcher CandidateFetcher
	Fares   *FareTable
	Now     func() time.Time
}

func NewEngine() *Engine {
	return &Engine{
		Fetcher: AggregatorFetcher{},
		Fares:   DefaultFareTable(),
		Now:     time.Now,
	}
}

// Params is one enquiry. Date, StartTime and EndTime are optional;
// TransportType other than bus/train means all types.
type Params struct {
	Source      string
	Destination string

	TransportType string

	Date string

	StartTime string
	EndTime   string
}

// Search runs the full enquiry pipeline: effective-date resolution,
// window planning, candidate fetch, grouping, the optional departure
// time filter and fare computation, returning results in ascending
// departure time order. An empty slice with a nil error means no
// matching services rather than a lookup failure.
func (e *Engine) Search(params Params) ([]transit.SearchResult, error) {
	source := strings.TrimSpace(params.Source)
	destination := strings.TrimSpace(params.Destination)

	if source == "" || destination == "" {
		return nil, ErrMissingLocation
	}

	effectiveDate := params.Date
	if effectiveDate == "" {
		extractor := DateHintExtractor{Now: e.Now}

		if cleaned, date := extractor.Extract(destination); date != "" {
			destination = cleaned
			effectiveDate = date
		}
	}

	spec := PlanWindow(source, destination, params.TransportType, effectiveDate)

	today := util.FormatDate(e.now())

	rows, err := e.Fetcher.FetchCandidates(query.SearchCandidates{
		Source:        spec.Source,
		Destination:   spec.Destination,
		TransportType: spec.TransportType,
		Date:          spec.Date,
		Today:         today,
	})
	if err != nil {
		return nil, err
	}

	results := GroupCandidates(rows, spec, today)
	results = filterDepartureWindow(results, params.StartTime, params.EndTime)

	for i := range results {
		results[i].VehicleClass = ClassifyVehicle(results[i].Operator)
		results[i].Fare = e.Fares.Price(FareRequest{
			Operator:       results[i].Operator,
			TransportType:  results[i].TransportType,
			DistanceKM:     results[i].DistanceKM,
			DepartureTime:  results[i].DepartureTime,
			SeatsTotal:     results[i].SeatsTotal,
			SeatsAvailable: results[i].SeatsAvailable,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DepartureTime < results[j].DepartureTime
	})

	return results, nil
}

// NextDeparture returns the first service leaving after the current
// time of day, rolling the window over to tomorrow's first departure
// when nothing is left today. Nil result means nothing found.
func (e *Engine) NextDeparture(params Params) (*transit.SearchResult, error) {
	now := e.now()

	if params.StartTime == "" {
		params.StartTime = now.Format("15:04")
	}

	results, err := e.Search(params)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		return &results[0], nil
	}

	if params.Date != "" {
		return nil, nil
	}

	nextDay, _ := iso8601.ParseISO8601("P1D")

	params.StartTime = ""
	params.Date = util.FormatDate(nextDay.Shift(now))

	results, err = e.Search(params)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		return &results[0], nil
	}

	return nil, nil
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}

	return time.Now()
}

func filterDepartureWindow(results []transit.SearchResult, startTime string, endTime string) []transit.SearchResult {
	startMinutes, haveStart := minuteOfDay(startTime)
	endMinutes, haveEnd := minuteOfDay(endTime)

	if !haveStart && !haveEnd {
		return results
	}

	filtered := results[:0]
	for _, result := range results {
		departure, ok := minuteOfDay(result.DepartureTime)
		if !ok {
			// Unparseable departure times are kept rather than
			// silently losing the record
			filtered = append(filtered, result)
			continue
		}

		if haveStart && departure < startMinutes {
			continue
		}
		if haveEnd && departure > endMinutes {
			continue
		}

		filtered = append(filtered, result)
	}

	return filtered
}

func minuteOfDay(timeOfDay string) (int, bool) {
	parts := strings.Split(timeOfDay, ":")
	if len(parts) < 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}

	return hours*60 + minutes, true
}

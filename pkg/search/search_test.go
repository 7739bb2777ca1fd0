package search

import (
	"errors"
	"testing"
	"time"

	"github.com/sawaari/sawaari/pkg/dataaggregator/query"
	"github.com/sawaari/sawaari/pkg/transit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	rows    []transit.CandidateRow
	err     error
	queries []query.SearchCandidates
}

func (f *fakeFetcher) FetchCandidates(q query.SearchCandidates) ([]transit.CandidateRow, error) {
	f.queries = append(f.queries, q)

	if f.err != nil {
		return nil, f.err
	}

	return f.rows, nil
}

func testEngine(fetcher *fakeFetcher) *Engine {
	return &Engine{
		Fetcher: fetcher,
		Fares:   DefaultFareTable(),
		Now:     fixedNow,
	}
}

func scheduleRow(scheduleID string, operator string, departure string, date string) transit.CandidateRow {
	row := transit.CandidateRow{
		ScheduleID:    scheduleID,
		Operator:      operator,
		DepartureTime: departure,
		ArrivalTime:   "18:00",
		DistanceKM:    250,
		TransportType: transit.TransportTypeBus,
	}

	if date != "" {
		row.Date = &date

		total, booked, available := 40, 10, 30
		row.SeatsTotal = &total
		row.SeatsBooked = &booked
		row.SeatsAvailable = &available
	}

	return row
}

func TestSearchRequiresSourceAndDestination(t *testing.T) {
	engine := testEngine(&fakeFetcher{})

	_, err := engine.Search(Params{Source: "", Destination: "mumbai"})
	assert.ErrorIs(t, err, ErrMissingLocation)

	_, err = engine.Search(Params{Source: "delhi", Destination: "   "})
	assert.ErrorIs(t, err, ErrMissingLocation)
}

func TestSearchPropagatesFetchFailure(t *testing.T) {
	fetchErr := errors.New("connection reset")
	engine := testEngine(&fakeFetcher{err: fetchErr})

	_, err := engine.Search(Params{Source: "delhi", Destination: "mumbai"})
	assert.ErrorIs(t, err, fetchErr)
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	engine := testEngine(&fakeFetcher{})

	results, err := engine.Search(Params{Source: "delhi", Destination: "mumbai"})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchExtractsDateFromDestination(t *testing.T) {
	fetcher := &fakeFetcher{}
	engine := testEngine(fetcher)

	_, err := engine.Search(Params{Source: "delhi", Destination: "mumbai on 15 november"})

	require.NoError(t, err)
	require.Len(t, fetcher.queries, 1)
	assert.Equal(t, "mumbai", fetcher.queries[0].Destination)
	assert.Equal(t, "2025-11-15", fetcher.queries[0].Date)
}

func TestSearchExplicitDateWinsOverExtraction(t *testing.T) {
	fetcher := &fakeFetcher{}
	engine := testEngine(fetcher)

	_, err := engine.Search(Params{
		Source:      "delhi",
		Destination: "mumbai on 15 november",
		Date:        "2025-12-01",
	})

	require.NoError(t, err)
	require.Len(t, fetcher.queries, 1)

	// Extraction is skipped entirely, so the destination keeps the
	// embedded phrase and the explicit date drives the window
	assert.Equal(t, "mumbai on 15 november", fetcher.queries[0].Destination)
	assert.Equal(t, "2025-12-01", fetcher.queries[0].Date)
}

func TestSearchOpenModeWindow(t *testing.T) {
	fetcher := &fakeFetcher{}
	engine := testEngine(fetcher)

	_, err := engine.Search(Params{Source: "delhi", Destination: "mumbai"})

	require.NoError(t, err)
	require.Len(t, fetcher.queries, 1)
	assert.Equal(t, "", fetcher.queries[0].Date)
	assert.Equal(t, "2025-03-10", fetcher.queries[0].Today)
}

func TestSearchSortsByDepartureTime(t *testing.T) {
	fetcher := &fakeFetcher{rows: []transit.CandidateRow{
		scheduleRow("schedule-1", "Sharma Travels", "18:30", "2025-03-12"),
		scheduleRow("schedule-2", "ABC VOLVO AC", "06:15", "2025-03-12"),
		scheduleRow("schedule-3", "UPSRTC", "11:00", "2025-03-12"),
	}}
	engine := testEngine(fetcher)

	results, err := engine.Search(Params{Source: "delhi", Destination: "mumbai"})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "06:15", results[0].DepartureTime)
	assert.Equal(t, "11:00", results[1].DepartureTime)
	assert.Equal(t, "18:30", results[2].DepartureTime)
}

func TestSearchComputesFareAndClass(t *testing.T) {
	fetcher := &fakeFetcher{rows: []transit.CandidateRow{
		scheduleRow("schedule-1", "ABC VOLVO AC", "07:30", "2025-03-12"),
	}}
	engine := testEngine(fetcher)

	results, err := engine.Search(Params{Source: "delhi", Destination: "mumbai"})

	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, transit.VehicleClassVolvo, results[0].VehicleClass)

	// 250 * 4.8 * 1.0 * (1 + 0.5*0.25) * 1.15 = 1552.5
	assert.InDelta(t, 1552.5, results[0].Fare, 0.001)
}

func TestSearchTransportTypeFilterPassedThrough(t *testing.T) {
	fetcher := &fakeFetcher{}
	engine := testEngine(fetcher)

	_, err := engine.Search(Params{Source: "delhi", Destination: "mumbai", TransportType: "train"})
	require.NoError(t, err)

	_, err = engine.Search(Params{Source: "delhi", Destination: "mumbai", TransportType: "rickshaw"})
	require.NoError(t, err)

	require.Len(t, fetcher.queries, 2)
	assert.Equal(t, transit.TransportType(transit.TransportTypeTrain), fetcher.queries[0].TransportType)

	// Unrecognised filters fall back to all types
	assert.Equal(t, transit.TransportType(""), fetcher.queries[1].TransportType)
}

func TestSearchDepartureWindowFilter(t *testing.T) {
	fetcher := &fakeFetcher{rows: []transit.CandidateRow{
		scheduleRow("schedule-1", "Sharma Travels", "05:30", "2025-03-12"),
		scheduleRow("schedule-2", "Sharma Travels", "08:00", "2025-03-12"),
		scheduleRow("schedule-3", "Sharma Travels", "21:00", "2025-03-12"),
	}}
	engine := testEngine(fetcher)

	results, err := engine.Search(Params{
		Source:      "delhi",
		Destination: "mumbai",
		StartTime:   "06:00",
		EndTime:     "18:00",
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "schedule-2", results[0].ScheduleID)
}

func TestNextDepartureReturnsFirstUpcoming(t *testing.T) {
	fetcher := &fakeFetcher{rows: []transit.CandidateRow{
		scheduleRow("schedule-1", "Sharma Travels", "09:00", "2025-03-12"),
		scheduleRow("schedule-2", "Sharma Travels", "16:45", "2025-03-12"),
	}}
	engine := testEngine(fetcher)

	// fixedNow is 14:30, so the 09:00 departure has already left
	result, err := engine.NextDeparture(Params{Source: "delhi", Destination: "mumbai"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "schedule-2", result.ScheduleID)
}

func TestNextDepartureRollsOverToTomorrow(t *testing.T) {
	fetcher := &fakeFetcher{rows: []transit.CandidateRow{
		scheduleRow("schedule-1", "Sharma Travels", "08:00", "2025-03-12"),
	}}
	engine := testEngine(fetcher)

	result, err := engine.NextDeparture(Params{
		Source:      "delhi",
		Destination: "mumbai",
		StartTime:   "23:00",
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	// Nothing left after 23:00, so the enquiry re-runs for tomorrow
	require.Len(t, fetcher.queries, 2)
	assert.Equal(t, "2025-03-11", fetcher.queries[1].Date)
	assert.Equal(t, "2025-03-11", result.Date)
}

func TestNextDepartureNothingFound(t *testing.T) {
	fetcher := &fakeFetcher{}
	engine := testEngine(fetcher)

	result, err := engine.NextDeparture(Params{Source: "delhi", Destination: "mumbai"})

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestPlanWindowModes(t *testing.T) {
	open := PlanWindow("delhi", "mumbai", "", "")
	assert.Equal(t, WindowMode(WindowModeOpen), open.Mode)
	assert.Equal(t, "", open.Date)

	exact := PlanWindow("delhi", "mumbai", "bus", "2025-03-15")
	assert.Equal(t, WindowMode(WindowModeExactDate), exact.Mode)
	assert.Equal(t, "2025-03-15", exact.Date)
	assert.Equal(t, transit.TransportType(transit.TransportTypeBus), exact.TransportType)
}

func TestEngineDefaultsNow(t *testing.T) {
	engine := &Engine{Fetcher: &fakeFetcher{}, Fares: DefaultFareTable()}

	before := time.Now()
	now := engine.now()

	assert.False(t, now.Before(before))
}

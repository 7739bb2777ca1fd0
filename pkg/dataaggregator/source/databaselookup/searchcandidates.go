package databaselookup

import (
	"context"

	"github.com/sawaari/sawaari/pkg/dataaggregator/query"
	"github.com/sawaari/sawaari/pkg/database"
	"github.com/sawaari/sawaari/pkg/transit"
	"go.mongodb.org/mongo-driver/bson"
)

// SearchCandidatesQuery performs the joined lookup behind a journey
// enquiry: stations matching the source/destination substrings, routes
// between them, schedules on those routes and the availability
// snapshots inside the requested date window, flattened into one
// CandidateRow per (schedule, snapshot) pair.
func (s Source) SearchCandidatesQuery(q query.SearchCandidates) ([]transit.CandidateRow, error) {
	sourceRefs, err := s.matchStationRefs(q.Source)
	if err != nil {
		return nil, err
	}
	destinationRefs, err := s.matchStationRefs(q.Destination)
	if err != nil {
		return nil, err
	}

	rows := []transit.CandidateRow{}
	if len(sourceRefs) == 0 || len(destinationRefs) == 0 {
		return rows, nil
	}

	routeFilter := bson.M{
		"sourcestationref":      bson.M{"$in": sourceRefs},
		"destinationstationref": bson.M{"$in": destinationRefs},
	}
	if q.TransportType != "" {
		routeFilter["transporttype"] = q.TransportType
	}

	routesCollection := database.GetCollection("routes")
	cursor, err := routesCollection.Find(context.Background(), routeFilter)
	if err != nil {
		return nil, err
	}

	routesByRef := map[string]transit.Route{}
	var routeRefs []string
	for cursor.Next(context.Background()) {
		var route transit.Route
		if err := cursor.Decode(&route); err != nil {
			return nil, err
		}

		routesByRef[route.PrimaryIdentifier] = route
		routeRefs = append(routeRefs, route.PrimaryIdentifier)
	}

	if len(routeRefs) == 0 {
		return rows, nil
	}

	schedulesCollection := database.GetCollection("schedules")
	cursor, err = schedulesCollection.Find(context.Background(), bson.M{"routeref": bson.M{"$in": routeRefs}})
	if err != nil {
		return nil, err
	}

	var schedules []transit.Schedule
	if err := cursor.All(context.Background(), &schedules); err != nil {
		return nil, err
	}

	for _, schedule := range schedules {
		route := routesByRef[schedule.RouteRef]

		scheduleRows, err := s.availabilityRows(schedule, route, q)
		if err != nil {
			return nil, err
		}

		rows = append(rows, scheduleRows...)
	}

	return rows, nil
}

// availabilityRows expands one schedule into its windowed candidate
// rows. Exact-date windows always yield exactly one row per schedule so
// a stored snapshot beats the synthesized null-date row.
func (s Source) availabilityRows(schedule transit.Schedule, route transit.Route, q query.SearchCandidates) ([]transit.CandidateRow, error) {
	availabilityCollection := database.GetCollection("availability")

	if q.Date != "" {
		var snapshot *transit.AvailabilitySnapshot
		availabilityCollection.FindOne(context.Background(), bson.M{
			"scheduleref": schedule.PrimaryIdentifier,
			"date":        q.Date,
		}).Decode(&snapshot)

		if snapshot == nil {
			return []transit.CandidateRow{emptyCandidateRow(schedule, route)}, nil
		}

		return []transit.CandidateRow{snapshotCandidateRow(schedule, route, *snapshot)}, nil
	}

	cursor, err := availabilityCollection.Find(context.Background(), bson.M{
		"scheduleref": schedule.PrimaryIdentifier,
		"date":        bson.M{"$gte": q.Today},
	})
	if err != nil {
		return nil, err
	}

	var snapshots []transit.AvailabilitySnapshot
	if err := cursor.All(context.Background(), &snapshots); err != nil {
		return nil, err
	}

	// A schedule with nothing upcoming still surfaces once, with a
	// null date, so the grouper can assume default capacity for today
	if len(snapshots) == 0 {
		return []transit.CandidateRow{emptyCandidateRow(schedule, route)}, nil
	}

	rows := make([]transit.CandidateRow, 0, len(snapshots))
	for _, snapshot := range snapshots {
		rows = append(rows, snapshotCandidateRow(schedule, route, snapshot))
	}

	return rows, nil
}

func emptyCandidateRow(schedule transit.Schedule, route transit.Route) transit.CandidateRow {
	return transit.CandidateRow{
		ScheduleID:    schedule.PrimaryIdentifier,
		Operator:      schedule.Operator,
		DepartureTime: schedule.DepartureTime,
		ArrivalTime:   schedule.ArrivalTime,
		DistanceKM:    route.DistanceKM,
		TransportType: route.TransportType,
	}
}

func snapshotCandidateRow(schedule transit.Schedule, route transit.Route, snapshot transit.AvailabilitySnapshot) transit.CandidateRow {
	row := emptyCandidateRow(schedule, route)

	date := snapshot.Date
	seatsTotal := snapshot.SeatsTotal
	seatsBooked := snapshot.SeatsBooked

	seatsAvailable := snapshot.SeatsAvailable
	if seatsAvailable == 0 && seatsTotal > 0 {
		seatsAvailable = seatsTotal - seatsBooked
	}

	row.Date = &date
	row.SeatsTotal = &seatsTotal
	row.SeatsBooked = &seatsBooked
	row.SeatsAvailable = &seatsAvailable

	return row
}

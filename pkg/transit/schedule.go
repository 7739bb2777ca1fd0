package transit

// Schedule is a recurring service definition on a route, not a single
// dated trip. Times are local time-of-day strings in HH:MM format.
type Schedule struct {
	PrimaryIdentifier string `groups:"basic" bson:"primaryidentifier"`

	RouteRef string `groups:"detailed" bson:"routeref"`

	Operator string `groups:"basic" bson:"operator"`

	DepartureTime string `groups:"basic" bson:"departuretime"`
	ArrivalTime   string `groups:"basic" bson:"arrivaltime"`

	RunningDays string `groups:"detailed" bson:"runningdays"`
}

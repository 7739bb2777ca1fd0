package transit

// CandidateRow is one flattened (schedule, availability snapshot) pair as
// returned by the data access layer. Date and the seat counts are nil for
// schedules that have no snapshot inside the requested window - the
// grouper fills in the default capacity for those.
type CandidateRow struct {
	ScheduleID    string
	Operator      string
	DepartureTime string
	ArrivalTime   string
	DistanceKM    float64
	TransportType TransportType

	Date *string

	SeatsTotal     *int
	SeatsBooked    *int
	SeatsAvailable *int
}

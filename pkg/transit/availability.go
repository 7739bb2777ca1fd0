package transit

// Seat capacity assumed for a schedule on dates that have no snapshot
// record at all.
const (
	DefaultSeatsTotal  = 40
	DefaultSeatsBooked = 0
)

// AvailabilitySnapshot holds the seat counts for one schedule on one
// calendar date (YYYY-MM-DD). Booking activity updates these outside of
// the search engine, which only ever reads them.
type AvailabilitySnapshot struct {
	ScheduleRef string `groups:"detailed" bson:"scheduleref"`

	Date string `groups:"basic" bson:"date"`

	SeatsTotal     int `groups:"basic" bson:"seatstotal"`
	SeatsBooked    int `groups:"basic" bson:"seatsbooked"`
	SeatsAvailable int `groups:"basic" bson:"seatsavailable"`
}

// DefaultSnapshot is the assumed availability for a schedule on a date
// with no stored snapshot.
func DefaultSnapshot(scheduleRef string, date string) AvailabilitySnapshot {
	return AvailabilitySnapshot{
		ScheduleRef:    scheduleRef,
		Date:           date,
		SeatsTotal:     DefaultSeatsTotal,
		SeatsBooked:    DefaultSeatsBooked,
		SeatsAvailable: DefaultSeatsTotal - DefaultSeatsBooked,
	}
}

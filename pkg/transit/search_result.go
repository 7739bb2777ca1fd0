package transit

// DateEntry is one upcoming date's seat figures for a schedule.
type DateEntry struct {
	Date string `groups:"basic" json:"date"`

	SeatsTotal     int `groups:"basic" json:"seats_total"`
	SeatsBooked    int `groups:"basic" json:"seats_booked"`
	SeatsAvailable int `groups:"basic" json:"seats_available"`
}

// SearchResult is built fresh for every query and never persisted. The
// representative date/seat fields mirror the earliest entry of
// AvailableDates in open mode, and the requested travel date in
// exact-date mode.
type SearchResult struct {
	ScheduleID string `groups:"basic" json:"schedule_id"`

	Operator      string        `groups:"basic" json:"operator"`
	DepartureTime string        `groups:"basic" json:"departure_time"`
	ArrivalTime   string        `groups:"basic" json:"arrival_time"`
	DistanceKM    float64       `groups:"basic" json:"distance_km"`
	TransportType TransportType `groups:"basic" json:"transport_type"`

	VehicleClass VehicleClass `groups:"basic" json:"vehicle_class"`
	Fare         float64      `groups:"basic" json:"fare"`

	Date string `groups:"basic" json:"date"`

	SeatsTotal     int `groups:"basic" json:"seats_total"`
	SeatsBooked    int `groups:"basic" json:"seats_booked"`
	SeatsAvailable int `groups:"basic" json:"seats_available"`

	// Only populated in open mode
	AvailableDates []DateEntry `groups:"detailed" json:"available_dates,omitempty"`
}

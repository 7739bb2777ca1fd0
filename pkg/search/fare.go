package search

import (
	"math"
	"strconv"
	"strings"

	"github.com/sawaari/sawaari/pkg/transit"
)

// FareTable is the immutable pricing configuration for the fare
// calculator. Tests substitute their own tables; production uses
// DefaultFareTable.
type FareTable struct {
	// Per-kilometre rate by vehicle class
	BaseRates map[transit.VehicleClass]float64
	// Rate for any class missing from BaseRates
	DefaultRate float64

	// Exact-match multiplier on the full operator string
	OperatorMultipliers map[string]float64

	// Weight of the seat-scarcity factor: a sold-out service costs
	// (1 + ScarcityWeight) times a fully available one
	ScarcityWeight float64

	// Multiplier applied when the departure hour falls in a peak range
	PeakSurcharge float64
	PeakHours     [][2]int

	MinimumFare float64
}

func DefaultFareTable() *FareTable {
	return &FareTable{
		BaseRates: map[transit.VehicleClass]float64{
			transit.VehicleClassAC:       3.5,
			transit.VehicleClassNonAC:    2.5,
			transit.VehicleClassSleeper:  4.0,
			transit.VehicleClassVolvo:    4.8,
			transit.VehicleClassOrdinary: 2.0,
		},
		DefaultRate: 2.0,
		OperatorMultipliers: map[string]float64{
			"UPSRTC": 1.10,
			"MSRTC":  0.95,
			"RSRTC":  1.00,
			"KSRTC":  1.05,
			"TSRTC":  1.08,
		},
		ScarcityWeight: 0.5,
		PeakSurcharge:  1.15,
		PeakHours:      [][2]int{{6, 9}, {17, 21}},
		MinimumFare:    150,
	}
}

// ClassifyVehicle infers the service tier from the operator display
// string. These are plain substring checks in priority order - an
// operator whose name happens to contain "ac" lands in the AC class,
// which is the long-standing pricing behaviour and must not change.
func ClassifyVehicle(operator string) transit.VehicleClass {
	upper := strings.ToUpper(operator)

	switch {
	case strings.Contains(upper, "VOLVO"):
		return transit.VehicleClassVolvo
	case strings.Contains(upper, "SLEEP"):
		return transit.VehicleClassSleeper
	case strings.Contains(upper, "AC"):
		return transit.VehicleClassAC
	default:
		return transit.VehicleClassOrdinary
	}
}

// OperatorMultiplier looks up the reputation multiplier for an operator.
// The whole operator string must match a table key exactly (ignoring
// case); "UPSRTC Volvo AC" is not "UPSRTC" and falls back to 1.0.
func (t *FareTable) OperatorMultiplier(operator string) float64 {
	upper := strings.ToUpper(strings.TrimSpace(operator))

	for name, multiplier := range t.OperatorMultipliers {
		if strings.ToUpper(name) == upper {
			return multiplier
		}
	}

	return 1.0
}

// FareRequest carries the schedule and representative-snapshot fields
// that price a single result.
type FareRequest struct {
	Operator      string
	TransportType transit.TransportType
	DistanceKM    float64
	DepartureTime string

	SeatsTotal     int
	SeatsAvailable int
}

// Price computes the dynamic fare: distance times the class base rate,
// scaled by operator reputation, seat scarcity and the peak-hour
// surcharge, rounded to 2 decimal places and floored at MinimumFare.
// Deterministic and side-effect free.
func (t *FareTable) Price(req FareRequest) float64 {
	vehicleClass := ClassifyVehicle(req.Operator)

	baseRate, found := t.BaseRates[vehicleClass]
	if !found {
		baseRate = t.DefaultRate
	}

	scarcityFactor := 1.0
	if req.SeatsTotal > 0 {
		ratio := float64(req.SeatsAvailable) / float64(req.SeatsTotal)
		scarcityFactor = 1 + t.ScarcityWeight*(1-ratio)
	}

	peakFactor := 1.0
	if t.isPeakHour(departureHour(req.DepartureTime)) {
		peakFactor = t.PeakSurcharge
	}

	fare := req.DistanceKM * baseRate * t.OperatorMultiplier(req.Operator) * scarcityFactor * peakFactor
	fare = math.Round(fare*100) / 100

	if fare < t.MinimumFare {
		return t.MinimumFare
	}

	return fare
}

func (t *FareTable) isPeakHour(hour int) bool {
	for _, window := range t.PeakHours {
		if hour >= window[0] && hour <= window[1] {
			return true
		}
	}

	return false
}

// departureHour reads the leading HH from a time-of-day string. Times
// without a colon (or with a garbled hour) default to midday, which is
// always off peak.
func departureHour(timeOfDay string) int {
	before, _, found := strings.Cut(timeOfDay, ":")
	if !found {
		return 12
	}

	hour, err := strconv.Atoi(strings.TrimSpace(before))
	if err != nil {
		return 12
	}

	return hour
}

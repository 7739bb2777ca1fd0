package transit

type VehicleClass string

const (
	VehicleClassVolvo    VehicleClass = "VOLVO"
	VehicleClassSleeper               = "SLEEPER"
	VehicleClassAC                    = "AC"
	VehicleClassNonAC                 = "NON-AC"
	VehicleClassOrdinary              = "ORDINARY"
)

package transit

type TransportType string

const (
	TransportTypeBus     TransportType = "bus"
	TransportTypeTrain                 = "train"
	TransportTypeUnknown               = "UNKNOWN"
)

// ParseTransportType normalises a user supplied type filter. An empty
// string means no filter, anything other than bus/train is Unknown.
func ParseTransportType(value string) (TransportType, bool) {
	switch value {
	case "":
		return "", true
	case "bus":
		return TransportTypeBus, true
	case "train":
		return TransportTypeTrain, true
	}

	return TransportTypeUnknown, false
}

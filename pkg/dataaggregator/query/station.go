package query

type Station struct {
	PrimaryIdentifier string
	Name              string
}

type StationList struct {
	NameFilter string
}

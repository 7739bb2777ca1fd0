package transit

type Route struct {
	PrimaryIdentifier string `groups:"basic" bson:"primaryidentifier"`

	SourceStationRef      string `groups:"detailed" bson:"sourcestationref"`
	DestinationStationRef string `groups:"detailed" bson:"destinationstationref"`

	// Denormalised copies of the station names so candidate rows can be
	// built without an extra lookup per row
	SourceStationName      string `groups:"basic" bson:"sourcestationname"`
	DestinationStationName string `groups:"basic" bson:"destinationstationname"`

	TransportType TransportType `groups:"basic" bson:"transporttype"`

	DistanceKM float64 `groups:"basic" bson:"distancekm"`

	RouteCode string `groups:"detailed" bson:"routecode"`
}

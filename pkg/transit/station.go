package transit

type Station struct {
	PrimaryIdentifier string `groups:"basic" bson:"primaryidentifier" csv:"identifier"`

	Name      string `groups:"basic" bson:"name" csv:"name"`
	HindiName string `groups:"basic" bson:"hindiname" csv:"hindi_name"`

	State string `groups:"detailed" bson:"state" csv:"state"`
}

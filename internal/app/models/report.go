package models

type Report struct {
	ID              string `bson:"_id,omitempty"`
	AppointmentID   string `bson:"appointmentId"`
	AccountID       string `bson:"accountId"`
	ConsultantID    string `bson:"consultantId"`
	NameOfPatient   string `bson:"nameOfPatient"`
	Age             int    `bson:"age"`
	Gender          string `bson:"gender"`
	Condition       string `bson:"condition"`
	Notes           string `bson:"notes,omitempty"`
	Recommendations string `bson:"recommendations,omitempty"`
	Status          string `bson:"status"`

	TimeModel `bson:",inline"`
}

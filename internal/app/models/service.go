package models

type Service struct {
	ID            string  `bson:"_id,omitempty"`
	Name          string  `bson:"name"`
	Description   string  `bson:"description,omitempty"`
	Price         float64 `bson:"price"`
	Currency      string  `bson:"currency"`
	DurationMins  int     `bson:"durationMins"`
	ReportEnabled bool    `bson:"reportEnabled"`

	TimeModel `bson:",inline"`
}

package responses

type Service struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	DurationMins  int     `json:"duration_mins"`
	ReportEnabled bool    `json:"report_enabled"`
}

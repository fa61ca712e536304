package requests

type CreateService struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Description   string  `json:"description" validate:"max=2000"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"required,len=3"`
	DurationMins  int     `json:"duration_mins" validate:"required,gt=0"`
	ReportEnabled bool    `json:"report_enabled"`
}

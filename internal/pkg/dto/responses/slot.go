package responses

import "time"

type Slot struct {
	ID           string    `json:"id"`
	ConsultantID string    `json:"consultant_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
}

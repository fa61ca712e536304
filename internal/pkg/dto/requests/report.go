package requests

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexInt decodes from a JSON number or a numeric string. Intake forms
// submit the patient age as free text, so both "35" and 35 arrive here.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%q is not a whole number", raw)
	}
	*n = FlexInt(parsed)
	return nil
}

type SubmitReport struct {
	AppointmentID   string  `json:"appointment_id" validate:"required"`
	NameOfPatient   string  `json:"name_of_patient" validate:"required"`
	Age             FlexInt `json:"age" validate:"required,gt=0"`
	Gender          string  `json:"gender" validate:"required,oneof=male female other"`
	Condition       string  `json:"condition" validate:"required"`
	Notes           string  `json:"notes" validate:"max=5000"`
	Recommendations string  `json:"recommendations" validate:"max=5000"`
	Status          string  `json:"status" validate:"max=100"`
}

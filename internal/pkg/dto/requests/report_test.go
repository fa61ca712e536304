package requests

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReportDecoding(t *testing.T) {
	t.Run("Accepts Age As String", func(t *testing.T) {
		payload := `{"appointment_id":"appt-1","name_of_patient":"Jane Doe","age":"35","gender":"female","condition":"generalized anxiety"}`

		var request SubmitReport
		require.NoError(t, json.Unmarshal([]byte(payload), &request))

		assert.Equal(t, FlexInt(35), request.Age)
	})

	t.Run("Accepts Age As Number", func(t *testing.T) {
		payload := `{"appointment_id":"appt-1","name_of_patient":"Jane Doe","age":35,"gender":"female","condition":"generalized anxiety"}`

		var request SubmitReport
		require.NoError(t, json.Unmarshal([]byte(payload), &request))

		assert.Equal(t, FlexInt(35), request.Age)
	})

	t.Run("Rejects Non Numeric Age", func(t *testing.T) {
		payload := `{"appointment_id":"appt-1","name_of_patient":"Jane Doe","age":"thirty-five","gender":"female","condition":"generalized anxiety"}`

		var request SubmitReport
		err := json.Unmarshal([]byte(payload), &request)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "thirty-five")
	})
}

package requests_test

import (
	"testing"

	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestPaymentCallbackValidation(t *testing.T) {
	callback := func(status string) *requests.PaymentCallback {
		return &requests.PaymentCallback{PaymentLinkID: "link-1", Status: status}
	}

	t.Run("Accepts Provider Statuses", func(t *testing.T) {
		for _, status := range []string{"completed", "failed", "expired"} {
			assert.NoError(t, utils.ValidateStruct(callback(status)), status)
		}
	})

	t.Run("Rejects Unknown Status", func(t *testing.T) {
		assert.Error(t, utils.ValidateStruct(callback("refunded")))
	})

	t.Run("Requires Payment Link", func(t *testing.T) {
		assert.Error(t, utils.ValidateStruct(&requests.PaymentCallback{Status: "completed"}))
	})
}

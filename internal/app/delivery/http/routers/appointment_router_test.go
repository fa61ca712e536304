package routers

import (
	"net/http"
	"testing"

	"counselink-service/internal/app/delivery/http/controllers"
	"counselink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAppointmentRouteMethods(t *testing.T) {
	router := chi.NewRouter()
	mw := middlewares.NewMiddlewares(zap.NewNop(), nil, nil)
	controller := controllers.NewAppointmentController(zap.NewNop(), nil)
	attachAppointmentRoutes(router, mw, controller)

	matches := func(method, path string) bool {
		return router.Match(chi.NewRouteContext(), method, path)
	}

	// Rescheduling creates a replacement appointment, so it rides POST.
	assert.True(t, matches(http.MethodPost, "/appt-1/reschedule"))
	assert.False(t, matches(http.MethodPut, "/appt-1/reschedule"))

	assert.True(t, matches(http.MethodPost, "/"))
	assert.True(t, matches(http.MethodGet, "/"))
	assert.True(t, matches(http.MethodGet, "/consultant/consultant-1"))
	assert.True(t, matches(http.MethodPut, "/appt-1/status"))
	assert.True(t, matches(http.MethodPut, "/appt-1/meet-link"))
}

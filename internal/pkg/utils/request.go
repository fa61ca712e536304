package utils

import (
	"net/http"
	"strconv"
	"time"

	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// BuildSlotFilterRequest reads the optional consultant/status/time-range
// filters from the query string. Timestamps must be RFC3339; malformed
// values are ignored rather than rejected.
func BuildSlotFilterRequest(r *http.Request) *requests.SlotFilter {
	filter := &requests.SlotFilter{
		ConsultantID: r.URL.Query().Get(constvars.URLQueryParamConsultantID),
		Status:       r.URL.Query().Get(constvars.URLQueryParamStatus),
	}

	if fromStr := r.URL.Query().Get(constvars.URLQueryParamFrom); fromStr != "" {
		if from, err := time.Parse(time.RFC3339, fromStr); err == nil {
			filter.From = &from
		}
	}
	if toStr := r.URL.Query().Get(constvars.URLQueryParamTo); toStr != "" {
		if to, err := time.Parse(time.RFC3339, toStr); err == nil {
			filter.To = &to
		}
	}

	return filter
}

func BuildAppointmentFilterRequest(r *http.Request) *requests.AppointmentFilter {
	return &requests.AppointmentFilter{
		Status: r.URL.Query().Get(constvars.URLQueryParamStatus),
	}
}

package utils

import (
	"context"

	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSessionData(ctx context.Context) *models.Session {
	if session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session); ok {
		return session
	}
	return nil
}

package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	AccountID string    `json:"account_id"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

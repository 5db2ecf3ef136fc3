package model

import "time"

type RateLimitConfig struct {
	EndpointType string
	Limit        int
	WindowSize   time.Duration
	Description  string
	IsActive     bool
}

type RateLimitStatus struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

package models

import "time"

// GatewayMetrics is the aggregated snapshot served to the admin dashboard.
type GatewayMetrics struct {
	CacheHitRatio             float64   `json:"cacheHitRatio"`
	CacheHits                 uint64    `json:"cacheHits"`
	CacheMisses               uint64    `json:"cacheMisses"`
	RequestsTotal             uint64    `json:"requestsTotal"`
	AverageRequestDurationMs  float64   `json:"averageRequestDurationMs"`
	UpstreamCalls             uint64    `json:"upstreamCalls"`
	AverageUpstreamDurationMs float64   `json:"averageUpstreamDurationMs"`
	ToastsEmitted             uint64    `json:"toastsEmitted"`
	Goroutines                int       `json:"goroutines"`
	GeneratedAt               time.Time `json:"generatedAt"`
}

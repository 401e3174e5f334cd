package constants

import "time"

const (
	DefaultSleeperBaseURL    = "https://api.sleeper.app/v1"
	DefaultStartSeason       = 2023
	DefaultRequestsPerSecond = 10
	DefaultRetries           = 3
	DefaultRetryDelay        = 250 * time.Millisecond
	MaxConnsPerHost          = 16
)

// MaxWeeksPerSeason caps the per-season week scan in case the source never
// returns an empty week.
const MaxWeeksPerSeason = 30

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 2 * time.Minute
	TeamsTimeout       = 30 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const UnknownOwner = "Unknown owner"

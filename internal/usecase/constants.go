package usecase

import "time"

const (
	// CompanyCacheTTL is how long the company configuration snapshot stays
	// cached; the BCV rate changes at most a few times a day.
	CompanyCacheTTL = 15 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// DefaultPageSize bounds unpaginated list requests.
	DefaultPageSize = 20
	MaxPageSize     = 100
)

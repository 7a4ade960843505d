package usecase

import "time"

const (
	// DefaultOperationTimeout bounds a single repository write including retries
	DefaultOperationTimeout = 10 * time.Second

	// DefaultSettingsCacheTTL is how long cached settings stay valid
	DefaultSettingsCacheTTL = 5 * time.Minute

	// MaxImportBatch is the largest number of vouchers accepted by one import
	MaxImportBatch = 1000

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// IdempotencyProcessing is stored under a key while its first request runs
	IdempotencyProcessing = "processing"
)

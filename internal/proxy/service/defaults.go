package service

import "time"

const (
	expectedTxRetries    = 10
	expectedTxRetryDelay = time.Second
	expectedTxTTL        = time.Hour
	expectedTxCapacity   = 10000

	estimateFeeAttempts = 10
	listUnspentAttempts = 15

	blockCacheFlushSize     = 16
	blockCacheFlushInterval = time.Second
	blockCacheRPS           = 50
)

package follower

import "time"

const (
	// Electrum servers cap blockchain.block.headers at one retarget period.
	defaultHeadersChunk    = 2016
	defaultReorgDepth      = 6
	defaultUTXOBatchSize   = 20
	defaultFetchWorkers    = 4
	defaultUTXOStartHeight = 1

	sleepDuration     = 5 * time.Second
	longSleepDuration = 1 * time.Minute
)

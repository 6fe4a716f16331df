package core

// MicroPerCoin is the number of micro-GC units in one whole coin.
const MicroPerCoin = 1_000_000

// Config holds node-level tunables shared across the field, storage,
// challenge, and ledger components. DefaultConfig mirrors the
// reference network's whitepaper defaults.
type Config struct {
	// K is the Shamir reconstruction threshold.
	K int
	// N is the total number of Shamir shares issued per chunk.
	N int
	// ChunkSize is the storage chunk size in bytes.
	ChunkSize int

	ChallengeTimeoutSecs uint64
	ChallengeMinBytes    int
	ChallengeMaxBytes    int

	PushFeeRate     uint64
	PullFeeRate     uint64
	ChallengeBonus  uint64
	BandwidthRate   uint64
	InitialSupply   uint64

	EmissionRateBps     uint32
	EmissionDecreaseBps uint32
	PushBurnRateBps     uint32
	PullBurnRateBps     uint32

	LedgerPath       string
	SnapshotInterval int
	LogLevel         string
}

// DefaultConfig returns the network's whitepaper-default tunables.
func DefaultConfig() Config {
	return Config{
		K:         5,
		N:         9,
		ChunkSize: 512 * 1024,

		ChallengeTimeoutSecs: 30,
		ChallengeMinBytes:    1024,
		ChallengeMaxBytes:    64 * 1024,

		PushFeeRate:    1_000,
		PullFeeRate:    500,
		ChallengeBonus: 10_000,
		BandwidthRate:  500,
		InitialSupply:  100_000_000 * MicroPerCoin,

		EmissionRateBps:     200,
		EmissionDecreaseBps: 10,
		PushBurnRateBps:     1000,
		PullBurnRateBps:     500,

		LedgerPath:       "gitgold_ledger.wal",
		SnapshotInterval: 1000,
		LogLevel:         "info",
	}
}

package core

import (
	"math/big"
	"sync"
)

// SupplyTracker tracks total minted and burned micro-GC, and computes
// the annual emission allowance under the network's decreasing-rate
// schedule.
type SupplyTracker struct {
	mu                  sync.RWMutex
	initialSupply       uint64
	totalMinted         uint64
	totalBurned         uint64
	emissionRateBps     uint32
	emissionDecreaseBps uint32
}

// NewSupplyTracker builds a tracker whose minted total starts at
// initialSupply.
func NewSupplyTracker(initialSupply uint64, emissionRateBps, emissionDecreaseBps uint32) *SupplyTracker {
	return &SupplyTracker{
		initialSupply:       initialSupply,
		totalMinted:         initialSupply,
		emissionRateBps:     emissionRateBps,
		emissionDecreaseBps: emissionDecreaseBps,
	}
}

// NewSupplyTrackerFromConfig builds a tracker using cfg's emission tunables.
func NewSupplyTrackerFromConfig(cfg Config) *SupplyTracker {
	return NewSupplyTracker(cfg.InitialSupply, cfg.EmissionRateBps, cfg.EmissionDecreaseBps)
}

// CirculatingSupply is total minted minus total burned.
func (s *SupplyTracker) CirculatingSupply() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.totalBurned >= s.totalMinted {
		return 0
	}
	return s.totalMinted - s.totalBurned
}

// TotalMinted returns the running total ever minted, including the
// initial supply.
func (s *SupplyTracker) TotalMinted() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalMinted
}

// TotalBurned returns the running total ever burned.
func (s *SupplyTracker) TotalBurned() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalBurned
}

// AnnualEmission computes the emission allowance for the given
// zero-indexed year: initial_supply * rate_bps / 10_000, where rate_bps
// decreases by emission_decrease_bps per year and floors at zero.
func (s *SupplyTracker) AnnualEmission(year uint32) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	decrease := uint64(s.emissionDecreaseBps) * uint64(year)
	if decrease >= uint64(s.emissionRateBps) {
		return 0
	}
	rateBps := uint64(s.emissionRateBps) - decrease

	supply := new(big.Int).SetUint64(s.initialSupply)
	rate := new(big.Int).SetUint64(rateBps)
	result := new(big.Int).Mul(supply, rate)
	result.Div(result, big.NewInt(10_000))
	return result.Uint64()
}

// Mint adds amount to the running minted total. The current design
// does not enforce an emission ceiling, mirroring the network's
// reference implementation.
func (s *SupplyTracker) Mint(amount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalMinted = saturatingAddUint64(s.totalMinted, amount)
}

// Burn adds amount to the running burned total.
func (s *SupplyTracker) Burn(amount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalBurned = saturatingAddUint64(s.totalBurned, amount)
}

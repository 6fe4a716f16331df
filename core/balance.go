package core

import "sync"

// BalanceTracker holds the current micro-GC balance for every address
// that has ever been credited or debited. An address with no entry
// reads as a zero balance.
type BalanceTracker struct {
	mu       sync.RWMutex
	balances map[Address]uint64
}

// NewBalanceTracker returns an empty tracker.
func NewBalanceTracker() *BalanceTracker {
	return &BalanceTracker{balances: make(map[Address]uint64)}
}

// Balance returns addr's current balance, or zero if addr is unknown.
func (b *BalanceTracker) Balance(addr Address) uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[addr]
}

// Credit adds amount to addr's balance, saturating at math.MaxUint64.
func (b *BalanceTracker) Credit(addr Address, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[addr] = saturatingAddUint64(b.balances[addr], amount)
}

// Debit subtracts amount from addr's balance. It fails without mutating
// state if the current balance is below amount.
func (b *BalanceTracker) Debit(addr Address, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	current := b.balances[addr]
	if current < amount {
		return &InsufficientBalanceError{Have: current, Need: amount}
	}
	b.balances[addr] = current - amount
	return nil
}

// Transfer moves amount from from to to. If from has insufficient
// balance, neither account is touched.
func (b *BalanceTracker) Transfer(from, to Address, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	current := b.balances[from]
	if current < amount {
		return &InsufficientBalanceError{Have: current, Need: amount}
	}
	b.balances[from] = current - amount
	b.balances[to] = saturatingAddUint64(b.balances[to], amount)
	return nil
}

// AllBalances returns a snapshot copy of every known address's balance.
func (b *BalanceTracker) AllBalances() map[Address]uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[Address]uint64, len(b.balances))
	for k, v := range b.balances {
		out[k] = v
	}
	return out
}

func saturatingAddUint64(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}

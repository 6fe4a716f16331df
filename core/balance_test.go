package core

import "testing"

func TestBalanceCreditAndBalance(t *testing.T) {
	tracker := NewBalanceTracker()
	addr := Address("alice")
	tracker.Credit(addr, 1000)
	if got := tracker.Balance(addr); got != 1000 {
		t.Fatalf("balance=%d want 1000", got)
	}
}

func TestBalanceDebitSuccess(t *testing.T) {
	tracker := NewBalanceTracker()
	addr := Address("alice")
	tracker.Credit(addr, 1000)
	if err := tracker.Debit(addr, 400); err != nil {
		t.Fatalf("debit: %v", err)
	}
	if got := tracker.Balance(addr); got != 600 {
		t.Fatalf("balance=%d want 600", got)
	}
}

func TestBalanceDebitInsufficient(t *testing.T) {
	tracker := NewBalanceTracker()
	addr := Address("alice")
	tracker.Credit(addr, 100)
	err := tracker.Debit(addr, 200)
	if err == nil {
		t.Fatalf("expected insufficient balance error")
	}
	var target *InsufficientBalanceError
	if ie, ok := err.(*InsufficientBalanceError); !ok || ie.Have != 100 || ie.Need != 200 {
		t.Fatalf("got %v want InsufficientBalanceError{100,200}: %v", err, target)
	}
}

func TestBalanceTransfer(t *testing.T) {
	tracker := NewBalanceTracker()
	alice := Address("alice")
	bob := Address("bob")
	tracker.Credit(alice, 1000)

	if err := tracker.Transfer(alice, bob, 300); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := tracker.Balance(alice); got != 700 {
		t.Fatalf("alice balance=%d want 700", got)
	}
	if got := tracker.Balance(bob); got != 300 {
		t.Fatalf("bob balance=%d want 300", got)
	}
}

func TestBalanceTransferInsufficient(t *testing.T) {
	tracker := NewBalanceTracker()
	alice := Address("alice")
	bob := Address("bob")
	tracker.Credit(alice, 100)

	if err := tracker.Transfer(alice, bob, 200); err == nil {
		t.Fatalf("expected transfer to fail")
	}
	if got := tracker.Balance(alice); got != 100 {
		t.Fatalf("alice balance changed on failed transfer: %d", got)
	}
	if got := tracker.Balance(bob); got != 0 {
		t.Fatalf("bob balance changed on failed transfer: %d", got)
	}
}

func TestBalanceUnknownAddressZero(t *testing.T) {
	tracker := NewBalanceTracker()
	if got := tracker.Balance(Address("nobody")); got != 0 {
		t.Fatalf("balance=%d want 0", got)
	}
}

package core

import (
	"errors"
	"fmt"
)

// Shamir secret-sharing errors.
var (
	ErrEmptySecret       = errors.New("empty secret")
	ErrThresholdTooLow   = errors.New("threshold must be >= 2")
	ErrInsufficientNodes = errors.New("total shares must be >= threshold")
	ErrNotEnoughShares   = errors.New("not enough shares for reconstruction")
	ErrDuplicateShareID  = errors.New("duplicate share id")
)

// Ledger errors.
var (
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrDuplicateTransaction = errors.New("duplicate transaction")
	ErrInvalidTransaction   = errors.New("invalid transaction")
)

// Challenge/proof errors. These are protocol-level integrity violations,
// distinct from the soft ValidationResult rejections returned by Validate.
var (
	ErrInvalidByteRange = errors.New("invalid byte range")
)

// Chunk errors.
var (
	ErrInvalidChunkIndex = errors.New("invalid chunk index")
)

// ThresholdTooLowError reports the offending threshold value.
type ThresholdTooLowError struct {
	K int
}

func (e *ThresholdTooLowError) Error() string {
	return fmt.Sprintf("threshold k=%d must be >= 2", e.K)
}

func (e *ThresholdTooLowError) Unwrap() error { return ErrThresholdTooLow }

// InsufficientNodesError reports the offending k/n pair.
type InsufficientNodesError struct {
	K, N int
}

func (e *InsufficientNodesError) Error() string {
	return fmt.Sprintf("total shares n=%d must be >= threshold k=%d", e.N, e.K)
}

func (e *InsufficientNodesError) Unwrap() error { return ErrInsufficientNodes }

// NotEnoughSharesError reports how many shares were supplied versus needed.
type NotEnoughSharesError struct {
	Have, Need int
}

func (e *NotEnoughSharesError) Error() string {
	return fmt.Sprintf("not enough shares for reconstruction: have %d, need %d", e.Have, e.Need)
}

func (e *NotEnoughSharesError) Unwrap() error { return ErrNotEnoughShares }

// DuplicateShareIDError names the duplicated share id.
type DuplicateShareIDError struct {
	ID uint32
}

func (e *DuplicateShareIDError) Error() string {
	return fmt.Sprintf("duplicate share id: %d", e.ID)
}

func (e *DuplicateShareIDError) Unwrap() error { return ErrDuplicateShareID }

// InsufficientBalanceError reports the shortfall of a debit attempt.
type InsufficientBalanceError struct {
	Have, Need uint64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %d, need %d", e.Have, e.Need)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// DuplicateTransactionError names the repeated tx id.
type DuplicateTransactionError struct {
	TxID string
}

func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("duplicate transaction: %s", e.TxID)
}

func (e *DuplicateTransactionError) Unwrap() error { return ErrDuplicateTransaction }

// InvalidByteRangeError reports an out-of-bounds challenge range.
type InvalidByteRangeError struct {
	Start, End, FragmentSize int
}

func (e *InvalidByteRangeError) Error() string {
	return fmt.Sprintf("invalid byte range: %d..%d for fragment of size %d", e.Start, e.End, e.FragmentSize)
}

func (e *InvalidByteRangeError) Unwrap() error { return ErrInvalidByteRange }

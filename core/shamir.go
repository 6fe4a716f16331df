package core

import (
	crand "crypto/rand"
	"fmt"
)

const shamirBlockSize = 32

// Share is one Shamir secret-share: a polynomial evaluated at x = ID,
// with Data holding one 32-byte block per block of the padded secret.
type Share struct {
	ID   uint32
	Data []byte
}

// ShamirSplit splits secret into n shares such that any k reconstruct it.
// The secret is right-padded with zero bytes to a multiple of 32 before
// splitting; callers must track the original length out of band.
func ShamirSplit(secret []byte, k, n int) ([]Share, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if k < 2 {
		return nil, &ThresholdTooLowError{K: k}
	}
	if n < k {
		return nil, &InsufficientNodesError{K: k, N: n}
	}

	padded := padToBlockSize(secret, shamirBlockSize)
	numBlocks := len(padded) / shamirBlockSize

	shares := make([]Share, n)
	for i := range shares {
		shares[i] = Share{ID: uint32(i + 1), Data: make([]byte, 0, numBlocks*shamirBlockSize)}
	}

	for blockIdx := 0; blockIdx < numBlocks; blockIdx++ {
		start := blockIdx * shamirBlockSize
		block := padded[start : start+shamirBlockSize]
		secretElem := FieldElementFromBytesBE(block)

		coeffs := make([]FieldElement, k)
		coeffs[0] = secretElem
		for i := 1; i < k; i++ {
			coeffs[i] = randomFieldElement()
		}

		for i := range shares {
			x := FieldElementFromUint64(uint64(shares[i].ID))
			y := evalPoly(coeffs, x)
			yb := y.ToBytesBE()
			shares[i].Data = append(shares[i].Data, yb[:]...)
		}
	}

	return shares, nil
}

// ShamirReconstruct recovers the padded secret from at least k shares. The
// first k shares (by position, not id) are used; duplicate ids among them
// are rejected.
func ShamirReconstruct(shares []Share, k int) ([]byte, error) {
	if len(shares) < k {
		return nil, &NotEnoughSharesError{Have: len(shares), Need: k}
	}

	seen := make(map[uint32]bool, k)
	for _, s := range shares[:k] {
		if seen[s.ID] {
			return nil, &DuplicateShareIDError{ID: s.ID}
		}
		seen[s.ID] = true
	}

	selected := shares[:k]
	numBlocks := len(selected[0].Data) / shamirBlockSize

	result := make([]byte, 0, numBlocks*shamirBlockSize)
	for blockIdx := 0; blockIdx < numBlocks; blockIdx++ {
		offset := blockIdx * shamirBlockSize

		xs := make([]FieldElement, k)
		ys := make([]FieldElement, k)
		for i, s := range selected {
			xs[i] = FieldElementFromUint64(uint64(s.ID))
			ys[i] = FieldElementFromBytesBE(s.Data[offset : offset+shamirBlockSize])
		}

		secretElem := lagrangeInterpolateAtZero(xs, ys)
		sb := secretElem.ToBytesBE()
		result = append(result, sb[:]...)
	}

	return result, nil
}

// evalPoly evaluates coeffs (constant term first) at x using Horner's method.
func evalPoly(coeffs []FieldElement, x FieldElement) FieldElement {
	result := FieldElementZero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(coeffs[i])
	}
	return result
}

// lagrangeInterpolateAtZero recovers P(0) from k points (xs[i], ys[i]),
// using the numerator form xs[j] / (xs[j] - xs[i]) so no negation is needed.
func lagrangeInterpolateAtZero(xs, ys []FieldElement) FieldElement {
	secret := FieldElementZero()
	for i := range xs {
		numerator := FieldElementOne()
		denominator := FieldElementOne()
		for j := range xs {
			if i == j {
				continue
			}
			numerator = numerator.Mul(xs[j])
			denominator = denominator.Mul(xs[j].Sub(xs[i]))
		}
		term := ys[i].Mul(numerator).Div(denominator)
		secret = secret.Add(term)
	}
	return secret
}

func randomFieldElement() FieldElement {
	v, err := crand.Int(crand.Reader, fieldPrime)
	if err != nil {
		panic(fmt.Sprintf("shamir: reading randomness: %v", err))
	}
	return FieldElement{value: v}
}

func padToBlockSize(secret []byte, blockSize int) []byte {
	rem := len(secret) % blockSize
	if rem == 0 {
		out := make([]byte, len(secret))
		copy(out, secret)
		return out
	}
	padLen := blockSize - rem
	out := make([]byte, len(secret)+padLen)
	copy(out, secret)
	return out
}

package core

import "math/big"

// fieldPrime is p = 2^256 - 189, the modulus of the field every Share
// coordinate and Shamir polynomial coefficient lives in.
var fieldPrime = new(big.Int).Sub(
	new(big.Int).Lsh(big.NewInt(1), 256),
	big.NewInt(189),
)

const fieldElementBytes = 32

// FieldElement is an immutable value in GF(p), p = 2^256 - 189.
type FieldElement struct {
	value *big.Int
}

// NewFieldElement reduces v modulo p.
func NewFieldElement(v *big.Int) FieldElement {
	r := new(big.Int).Mod(v, fieldPrime)
	return FieldElement{value: r}
}

// FieldElementFromUint64 builds a field element from a u64.
func FieldElementFromUint64(v uint64) FieldElement {
	return NewFieldElement(new(big.Int).SetUint64(v))
}

// FieldElementZero is the additive identity.
func FieldElementZero() FieldElement {
	return FieldElement{value: big.NewInt(0)}
}

// FieldElementOne is the multiplicative identity.
func FieldElementOne() FieldElement {
	return FieldElement{value: big.NewInt(1)}
}

// FieldElementFromBytesBE interprets bytes as a big-endian unsigned integer,
// reducing it modulo p.
func FieldElementFromBytesBE(b []byte) FieldElement {
	return NewFieldElement(new(big.Int).SetBytes(b))
}

// ToBytesBE exports the element as 32 big-endian bytes, left zero-padded.
func (f FieldElement) ToBytesBE() [fieldElementBytes]byte {
	var out [fieldElementBytes]byte
	b := f.value.Bytes()
	if len(b) >= fieldElementBytes {
		copy(out[:], b[len(b)-fieldElementBytes:])
	} else {
		copy(out[fieldElementBytes-len(b):], b)
	}
	return out
}

// Value exposes the underlying big integer. Callers must not mutate it.
func (f FieldElement) Value() *big.Int { return f.value }

// Add returns f + g mod p.
func (f FieldElement) Add(g FieldElement) FieldElement {
	r := new(big.Int).Add(f.value, g.value)
	r.Mod(r, fieldPrime)
	return FieldElement{value: r}
}

// Sub returns f - g mod p, computed as (f + p - g) mod p to stay nonnegative.
func (f FieldElement) Sub(g FieldElement) FieldElement {
	r := new(big.Int).Add(f.value, fieldPrime)
	r.Sub(r, g.value)
	r.Mod(r, fieldPrime)
	return FieldElement{value: r}
}

// Mul returns f * g mod p.
func (f FieldElement) Mul(g FieldElement) FieldElement {
	r := new(big.Int).Mul(f.value, g.value)
	r.Mod(r, fieldPrime)
	return FieldElement{value: r}
}

// Inv returns the multiplicative inverse of f via Fermat's little theorem:
// f^(p-2) mod p. Panics if f is zero, mirroring the reference implementation's
// refusal to invert the additive identity.
func (f FieldElement) Inv() FieldElement {
	if f.value.Sign() == 0 {
		panic("cannot invert zero")
	}
	exp := new(big.Int).Sub(fieldPrime, big.NewInt(2))
	r := new(big.Int).Exp(f.value, exp, fieldPrime)
	return FieldElement{value: r}
}

// Div returns f / g, i.e. f * g.Inv().
func (f FieldElement) Div(g FieldElement) FieldElement {
	return f.Mul(g.Inv())
}

// Equal reports whether f and g hold the same value.
func (f FieldElement) Equal(g FieldElement) bool {
	return f.value.Cmp(g.value) == 0
}

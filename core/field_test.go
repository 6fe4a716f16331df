package core

import (
	"math/big"
	"testing"
)

func TestFieldAdd(t *testing.T) {
	a := FieldElementFromUint64(10)
	b := FieldElementFromUint64(20)
	c := a.Add(b)
	if c.Value().Cmp(big.NewInt(30)) != 0 {
		t.Fatalf("got %s want 30", c.Value())
	}
}

func TestFieldSub(t *testing.T) {
	a := FieldElementFromUint64(30)
	b := FieldElementFromUint64(10)
	c := a.Sub(b)
	if c.Value().Cmp(big.NewInt(20)) != 0 {
		t.Fatalf("got %s want 20", c.Value())
	}
}

func TestFieldSubUnderflow(t *testing.T) {
	a := FieldElementFromUint64(5)
	b := FieldElementFromUint64(10)
	c := a.Sub(b)
	expected := new(big.Int).Sub(fieldPrime, big.NewInt(5))
	if c.Value().Cmp(expected) != 0 {
		t.Fatalf("got %s want %s", c.Value(), expected)
	}
}

func TestFieldMul(t *testing.T) {
	a := FieldElementFromUint64(7)
	b := FieldElementFromUint64(6)
	c := a.Mul(b)
	if c.Value().Cmp(big.NewInt(42)) != 0 {
		t.Fatalf("got %s want 42", c.Value())
	}
}

func TestFieldInv(t *testing.T) {
	a := FieldElementFromUint64(7)
	product := a.Mul(a.Inv())
	if !product.Equal(FieldElementOne()) {
		t.Fatalf("a * a^-1 = %s, want 1", product.Value())
	}
}

func TestFieldDiv(t *testing.T) {
	a := FieldElementFromUint64(42)
	b := FieldElementFromUint64(7)
	c := a.Div(b)
	if c.Value().Cmp(big.NewInt(6)) != 0 {
		t.Fatalf("got %s want 6", c.Value())
	}
}

func TestFieldBytesRoundtrip(t *testing.T) {
	original := FieldElementFromUint64(123456789)
	bytes := original.ToBytesBE()
	if len(bytes) != 32 {
		t.Fatalf("len=%d want 32", len(bytes))
	}
	recovered := FieldElementFromBytesBE(bytes[:])
	if !original.Equal(recovered) {
		t.Fatalf("roundtrip mismatch")
	}
}

func TestFieldInvZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic inverting zero")
		}
	}()
	FieldElementZero().Inv()
}

func TestFieldOneTimesXIsX(t *testing.T) {
	x := FieldElementFromUint64(999)
	result := x.Mul(FieldElementOne())
	if !result.Equal(x) {
		t.Fatalf("1*x != x")
	}
}

func TestFieldLargeValueReduction(t *testing.T) {
	val := new(big.Int).Add(fieldPrime, big.NewInt(5))
	elem := NewFieldElement(val)
	if elem.Value().Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("got %s want 5", elem.Value())
	}
}

package core

import (
	"strings"
	"testing"
)

func TestGenerateAndSignVerify(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	message := []byte("test message")
	sig := kp.Sign(message)
	pk := kp.PublicKey()
	if !pk.Verify(message, sig) {
		t.Fatalf("expected valid signature")
	}
}

func TestWrongMessageFails(t *testing.T) {
	kp, _ := GenerateKeyPair()
	sig := kp.Sign([]byte("correct message"))
	pk := kp.PublicKey()
	if pk.Verify([]byte("wrong message"), sig) {
		t.Fatalf("expected verification to fail")
	}
}

func TestWrongKeyFails(t *testing.T) {
	kp1, _ := GenerateKeyPair()
	kp2, _ := GenerateKeyPair()
	sig := kp1.Sign([]byte("message"))
	pk2 := kp2.PublicKey()
	if pk2.Verify([]byte("message"), sig) {
		t.Fatalf("expected verification to fail with wrong key")
	}
}

func TestAddressIs64HexChars(t *testing.T) {
	kp, _ := GenerateKeyPair()
	addr := kp.Address()
	if len(addr) != 64 {
		t.Fatalf("len=%d want 64", len(addr))
	}
	for _, c := range string(addr) {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Fatalf("non-hex char %q in address", c)
		}
	}
}

func TestFromSeedRoundtrip(t *testing.T) {
	kp1, _ := GenerateKeyPair()
	secret := kp1.SecretBytes()
	kp2, err := KeyPairFromSeed(secret)
	if err != nil {
		t.Fatalf("from seed: %v", err)
	}
	if kp1.Address() != kp2.Address() {
		t.Fatalf("address mismatch after seed roundtrip")
	}
}

func TestSystemAddressReserved(t *testing.T) {
	if len(SystemAddress) != 64 {
		t.Fatalf("system address len=%d want 64", len(SystemAddress))
	}
	if strings.Trim(string(SystemAddress), "0") != "" {
		t.Fatalf("system address must be all zeros")
	}
}

package core

import "testing"

func TestCreateProof(t *testing.T) {
	cfg := DefaultConfig()
	fragmentData := make([]byte, 100_000)
	for i := range fragmentData {
		fragmentData[i] = 0xAB
	}
	challenge, err := GenerateChallenge("repo", 0, 1, len(fragmentData), cfg)
	if err != nil {
		t.Fatalf("generate challenge: %v", err)
	}

	proof := CreateChallengeProof(challenge, fragmentData, 100, func([]byte) []byte {
		return []byte("fakesig")
	})

	if proof.ChallengeID != challenge.ID {
		t.Fatalf("challenge id mismatch")
	}
	if proof.Hash.IsZero() {
		t.Fatalf("expected nonzero hash")
	}
	if proof.ResponseTimeMs != 100 {
		t.Fatalf("response time mismatch")
	}
}

func TestSameChallengeSameProofHash(t *testing.T) {
	cfg := DefaultConfig()
	fragmentData := make([]byte, 100_000)
	for i := range fragmentData {
		fragmentData[i] = 0x42
	}
	challenge, err := GenerateChallenge("repo", 0, 1, len(fragmentData), cfg)
	if err != nil {
		t.Fatalf("generate challenge: %v", err)
	}

	sign := func([]byte) []byte { return []byte("sig") }
	p1 := CreateChallengeProof(challenge, fragmentData, 50, sign)
	p2 := CreateChallengeProof(challenge, fragmentData, 100, sign)

	if p1.Hash != p2.Hash {
		t.Fatalf("expected identical hash for identical challenge and data")
	}
}

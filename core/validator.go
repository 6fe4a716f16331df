package core

import (
	"encoding/hex"
	"fmt"
)

// ValidationResult is the outcome of validating a ChallengeProof.
type ValidationResult struct {
	Valid      bool
	Reward     uint64
	SpeedBonus float64
	Reason     string
}

// ValidateChallengeResponse checks a proof against the challenge it answers:
// response time within timeout, hash matches the expected range hash, and
// the signature verifies under nodePubKey. An out-of-bounds byte range is
// a hard error; the other three checks soft-fail via ValidationResult.Valid.
func ValidateChallengeResponse(challenge *Challenge, proof *ChallengeProof, fragmentData []byte, nodePubKey PublicKey, cfg Config) (ValidationResult, error) {
	if proof.ResponseTimeMs > challenge.TimeoutMs {
		return ValidationResult{
			Valid:  false,
			Reason: fmt.Sprintf("timeout: %dms > %dms", proof.ResponseTimeMs, challenge.TimeoutMs),
		}, nil
	}

	if challenge.RangeEnd > len(fragmentData) {
		return ValidationResult{}, &InvalidByteRangeError{
			Start: challenge.RangeStart, End: challenge.RangeEnd, FragmentSize: len(fragmentData),
		}
	}

	rangeData := fragmentData[challenge.RangeStart:challenge.RangeEnd]
	expectedHash := sha256Pair(rangeData, challenge.Nonce[:])

	if proof.Hash != expectedHash {
		return ValidationResult{
			Valid: false,
			Reason: fmt.Sprintf("hash mismatch: expected %s, got %s",
				expectedHash.Hex(), proof.Hash.Hex()),
		}, nil
	}

	signable := make([]byte, 0, len(challenge.ID)+len(proof.Hash))
	signable = append(signable, []byte(challenge.ID)...)
	signable = append(signable, proof.Hash[:]...)

	sigBytes, decodeErr := hex.DecodeString(proof.SignatureHex)
	if decodeErr != nil || !nodePubKey.Verify(signable, sigBytes) {
		return ValidationResult{
			Valid:  false,
			Reason: "invalid signature",
		}, nil
	}

	speedBonus := (1.0 - float64(proof.ResponseTimeMs)/float64(challenge.TimeoutMs)) * 0.5
	if speedBonus < 0 {
		speedBonus = 0
	}
	reward := uint64(float64(cfg.ChallengeBonus) * (1.0 + speedBonus))

	return ValidationResult{
		Valid:      true,
		Reward:     reward,
		SpeedBonus: speedBonus,
	}, nil
}

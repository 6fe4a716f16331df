package core

import "encoding/hex"

// ChallengeProof is a storage node's response to a Challenge.
type ChallengeProof struct {
	ChallengeID     string
	Hash            Hash256
	ResponseTimeMs  uint64
	SignatureHex    string
}

// CreateChallengeProof hashes the requested byte range together with the
// challenge nonce and signs (challenge_id || hash) via signFn, which
// returns the raw Ed25519 signature bytes.
func CreateChallengeProof(challenge *Challenge, fragmentData []byte, responseTimeMs uint64, signFn func([]byte) []byte) ChallengeProof {
	rangeData := fragmentData[challenge.RangeStart:challenge.RangeEnd]
	hash := sha256Pair(rangeData, challenge.Nonce[:])

	signable := make([]byte, 0, len(challenge.ID)+len(hash))
	signable = append(signable, []byte(challenge.ID)...)
	signable = append(signable, hash[:]...)

	signature := signFn(signable)

	return ChallengeProof{
		ChallengeID:    challenge.ID,
		Hash:           hash,
		ResponseTimeMs: responseTimeMs,
		SignatureHex:   hex.EncodeToString(signature),
	}
}

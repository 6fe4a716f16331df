package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/google/uuid"
)

// Challenge is a proof-of-availability challenge issued to a storage node,
// asking it to hash a random byte range of a stored fragment.
type Challenge struct {
	ID          string
	RepoHash    string
	FragmentID  uint32
	ShareID     uint32
	RangeStart  int
	RangeEnd    int
	Nonce       [32]byte
	TimeoutMs   uint64
	IssuedAtSec int64
}

// GenerateChallenge picks a random byte range within fragmentSize (bounded
// by cfg.ChallengeMinBytes/MaxBytes) and a random nonce, producing a new
// challenge for the given repo fragment and share.
func GenerateChallenge(repoHash string, fragmentID, shareID uint32, fragmentSize int, cfg Config) (*Challenge, error) {
	minRange := cfg.ChallengeMinBytes
	maxRange := cfg.ChallengeMaxBytes
	if fragmentSize < maxRange {
		maxRange = fragmentSize
	}

	if fragmentSize < minRange {
		return nil, &InvalidByteRangeError{Start: 0, End: minRange, FragmentSize: fragmentSize}
	}

	rangeSize, err := randomIntInRange(minRange, maxRange)
	if err != nil {
		return nil, err
	}

	maxStart := fragmentSize - rangeSize
	start := 0
	if maxStart > 0 {
		start, err = randomIntInRange(0, maxStart)
		if err != nil {
			return nil, err
		}
	}
	end := start + rangeSize

	var nonce [32]byte
	if _, err := crand.Read(nonce[:]); err != nil {
		return nil, err
	}

	return &Challenge{
		ID:          uuid.NewString(),
		RepoHash:    repoHash,
		FragmentID:  fragmentID,
		ShareID:     shareID,
		RangeStart:  start,
		RangeEnd:    end,
		Nonce:       nonce,
		TimeoutMs:   cfg.ChallengeTimeoutSecs * 1000,
		IssuedAtSec: time.Now().Unix(),
	}, nil
}

// randomIntInRange returns a uniform random integer in [lo, hi] inclusive.
func randomIntInRange(lo, hi int) (int, error) {
	if lo >= hi {
		return lo, nil
	}
	span := uint64(hi-lo) + 1
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(buf[:])
	return lo + int(v%span), nil
}

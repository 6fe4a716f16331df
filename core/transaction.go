package core

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ethereum/go-ethereum/rlp"
)

// TransactionType enumerates the kinds of ledger-recorded transfers.
type TransactionType string

const (
	TxMint            TransactionType = "Mint"
	TxBurn            TransactionType = "Burn"
	TxTransfer        TransactionType = "Transfer"
	TxPushFee         TransactionType = "PushFee"
	TxPullFee         TransactionType = "PullFee"
	TxStorageReward   TransactionType = "StorageReward"
	TxChallengeReward TransactionType = "ChallengeReward"
	TxBandwidthReward TransactionType = "BandwidthReward"
)

// Metadata is an opaque bag of string key/value pairs attached to a
// transaction (repo hash, fragment ids, and similar context).
type Metadata map[string]string

// rlpMetadataEntry is one sorted key/value pair, the unit RLP encodes.
type rlpMetadataEntry struct {
	Key   string
	Value string
}

// canonicalBytes RLP-encodes metadata as a list of key/value pairs sorted
// by key, giving a byte-stable serialization independent of map iteration
// order.
func (m Metadata) canonicalBytes() []byte {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]rlpMetadataEntry, len(keys))
	for i, k := range keys {
		entries[i] = rlpMetadataEntry{Key: k, Value: m[k]}
	}

	encoded, err := rlp.EncodeToBytes(entries)
	if err != nil {
		panic(fmt.Sprintf("metadata: rlp encode: %v", err))
	}
	return encoded
}

// Transaction is a single entry on the ledger.
type Transaction struct {
	TxID         string
	Type         TransactionType
	From         Address
	To           Address
	Amount       uint64
	Metadata     Metadata
	TimestampSec int64
	SignatureHex string
}

// SignableBytes computes the canonical byte sequence this transaction
// signs and hashes: tx_id || from || to || amount || timestamp ||
// canonical(metadata).
func (tx *Transaction) SignableBytes() []byte {
	var out []byte
	out = append(out, []byte(tx.TxID)...)
	out = append(out, []byte(tx.From)...)
	out = append(out, []byte(tx.To)...)
	out = append(out, []byte(strconv.FormatUint(tx.Amount, 10))...)
	out = append(out, []byte(strconv.FormatInt(tx.TimestampSec, 10))...)
	out = append(out, tx.Metadata.canonicalBytes()...)
	return out
}

// Hash returns the SHA-256 digest of the transaction's signable bytes.
func (tx *Transaction) Hash() Hash256 {
	return sha256Sum(tx.SignableBytes())
}

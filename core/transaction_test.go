package core

import "testing"

func testTx() *Transaction {
	return &Transaction{
		TxID:         "tx-001",
		Type:         TxTransfer,
		From:         Address("aaa"),
		To:           Address("bbb"),
		Amount:       1_000_000,
		Metadata:     Metadata{},
		TimestampSec: 1700000000,
	}
}

func TestTransactionHashDeterministic(t *testing.T) {
	tx := testTx()
	if tx.Hash() != tx.Hash() {
		t.Fatalf("hash not deterministic")
	}
}

func TestTransactionDifferentTxsDifferentHashes(t *testing.T) {
	tx1 := testTx()
	tx2 := testTx()
	tx2.Amount = 2_000_000

	if tx1.Hash() == tx2.Hash() {
		t.Fatalf("expected different hashes for different amounts")
	}
}

func TestTransactionSignableBytesStable(t *testing.T) {
	tx := testTx()
	b1 := tx.SignableBytes()
	b2 := tx.SignableBytes()
	if string(b1) != string(b2) {
		t.Fatalf("signable bytes not stable")
	}
}

func TestTransactionMetadataOrderIndependent(t *testing.T) {
	tx1 := testTx()
	tx1.Metadata = Metadata{"repo": "abc", "fragment": "3"}
	tx2 := testTx()
	tx2.Metadata = Metadata{"fragment": "3", "repo": "abc"}

	if tx1.Hash() != tx2.Hash() {
		t.Fatalf("expected map iteration order to not affect hash")
	}
}

func TestTransactionDifferentMetadataDifferentHash(t *testing.T) {
	tx1 := testTx()
	tx1.Metadata = Metadata{"repo": "abc"}
	tx2 := testTx()
	tx2.Metadata = Metadata{"repo": "xyz"}

	if tx1.Hash() == tx2.Hash() {
		t.Fatalf("expected different metadata to change hash")
	}
}

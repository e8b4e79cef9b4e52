package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// GenesisPreviousHash is the sentinel linkage value of the first
// block. It is not the digest of any block; block 1 is exempt from
// the linkage invariant.
const GenesisPreviousHash = "1"

// GenesisProof is the fixed proof sealed into the first block.
const GenesisProof int64 = 100

type Transaction struct {
	Sender    string `json:"sender" msgpack:"s"`
	Recipient string `json:"recipient" msgpack:"r"`
	Amount    int64  `json:"amount" msgpack:"a"`
}

type Block struct {
	Index        int64         `json:"index" msgpack:"i"`
	Timestamp    float64       `json:"timestamp" msgpack:"t"`
	Transactions []Transaction `json:"transactions" msgpack:"x"`
	Proof        int64         `json:"proof" msgpack:"p"`
	PreviousHash string        `json:"previous_hash" msgpack:"h"`
}

// Hash returns the sha256 digest of the block's canonical form as
// lowercase hex. The canonical form is the wire shape re-encoded
// through maps so keys are emitted in sorted order; two structurally
// identical blocks hash identically however they were built.
func (b *Block) Hash() string {
	txs := make([]map[string]interface{}, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		txs = append(txs, map[string]interface{}{
			"amount":    tx.Amount,
			"recipient": tx.Recipient,
			"sender":    tx.Sender,
		})
	}

	canonical, _ := json.Marshal(map[string]interface{}{
		"index":         b.Index,
		"previous_hash": b.PreviousHash,
		"proof":         b.Proof,
		"timestamp":     b.Timestamp,
		"transactions":  txs,
	})

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

package chain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashDeterministic(t *testing.T) {
	a := Block{
		Index:     2,
		Timestamp: 1700000000.5,
		Transactions: []Transaction{
			{Sender: "alice", Recipient: "bob", Amount: 5},
			{Sender: "0", Recipient: "miner", Amount: 1},
		},
		Proof:        35293,
		PreviousHash: "abc123",
	}

	// same values assembled in a different order
	b := Block{}
	b.PreviousHash = "abc123"
	b.Proof = 35293
	b.Timestamp = 1700000000.5
	b.Index = 2
	b.Transactions = append(b.Transactions, Transaction{Sender: "alice", Recipient: "bob", Amount: 5})
	b.Transactions = append(b.Transactions, Transaction{Sender: "0", Recipient: "miner", Amount: 1})

	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashShape(t *testing.T) {
	b := Block{Index: 1, Timestamp: 1, Proof: GenesisProof, PreviousHash: GenesisPreviousHash}

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), b.Hash())
}

func TestHashSensitivity(t *testing.T) {
	a := Block{Index: 2, Timestamp: 1700000000, Proof: 100, PreviousHash: "x"}
	b := a
	b.Proof = 101

	assert.NotEqual(t, a.Hash(), b.Hash())

	c := a
	c.Transactions = []Transaction{{Sender: "alice", Recipient: "bob", Amount: 5}}

	assert.NotEqual(t, a.Hash(), c.Hash())
}

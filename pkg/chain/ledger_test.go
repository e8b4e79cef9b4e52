package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerSealsGenesis(t *testing.T) {
	l := NewLedger()

	require.Equal(t, 1, l.Len())

	genesis := l.LastBlock()
	assert.Equal(t, int64(1), genesis.Index)
	assert.Equal(t, GenesisProof, genesis.Proof)
	assert.Equal(t, GenesisPreviousHash, genesis.PreviousHash)
	assert.Empty(t, genesis.Transactions)
}

func TestNewTransactionPredictsNextBlock(t *testing.T) {
	l := NewLedger()

	index := l.NewTransaction(Transaction{Sender: "a", Recipient: "b", Amount: 7})

	assert.Equal(t, int64(2), index)
	assert.Equal(t, 1, l.Pool().Len())
}

func TestSealBlockLinksToLast(t *testing.T) {
	l := NewLedger()
	genesis := l.LastBlock()

	block := l.SealBlock(12345, "")

	assert.Equal(t, int64(2), block.Index)
	assert.Equal(t, genesis.Hash(), block.PreviousHash)
	assert.Equal(t, 2, l.Len())
}

func TestMine(t *testing.T) {
	l := NewLedger(WithNodeID("testnode"))
	genesis := l.LastBlock()

	l.NewTransaction(Transaction{Sender: "0", Recipient: "R", Amount: 1})

	block := l.Mine()

	require.Equal(t, 2, l.Len())
	assert.Equal(t, genesis.Hash(), block.PreviousHash)
	assert.True(t, l.ProofOfWork().ValidProof(genesis.Proof, block.Proof))

	// submitted transaction plus the mining reward, in order
	require.Len(t, block.Transactions, 2)
	assert.Equal(t, Transaction{Sender: "0", Recipient: "R", Amount: 1}, block.Transactions[0])
	assert.Equal(t, Transaction{Sender: RewardSender, Recipient: "testnode", Amount: RewardAmount}, block.Transactions[1])

	// pool fully drained into the sealed block
	assert.Equal(t, 0, l.Pool().Len())
}

func TestReplaceChain(t *testing.T) {
	l := NewLedger(WithProofOfWork(NewProofOfWork("1")))
	other := NewLedger(WithProofOfWork(NewProofOfWork("1")))
	other.Mine()
	other.Mine()

	l.ReplaceChain(other.Blocks())

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, other.LastBlock(), l.LastBlock())
}

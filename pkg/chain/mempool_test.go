package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemPoolOrder(t *testing.T) {
	m := NewTxMemPool()

	m.Add(Transaction{Sender: "a", Recipient: "b", Amount: 1})
	m.Add(Transaction{Sender: "b", Recipient: "c", Amount: 2})
	m.Add(Transaction{Sender: "c", Recipient: "a", Amount: 3})

	assert.Equal(t, 3, m.Len())

	drained := m.DrainAll()

	assert.Equal(t, []Transaction{
		{Sender: "a", Recipient: "b", Amount: 1},
		{Sender: "b", Recipient: "c", Amount: 2},
		{Sender: "c", Recipient: "a", Amount: 3},
	}, drained)
}

func TestMemPoolDrainEmpties(t *testing.T) {
	m := NewTxMemPool()

	m.Add(Transaction{Sender: "a", Recipient: "b", Amount: 1})
	m.DrainAll()

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.DrainAll())
}

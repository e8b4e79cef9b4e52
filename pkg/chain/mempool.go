package chain

import "sync"

// MemPool holds transactions not yet sealed into a block.
type MemPool interface {
	Add(Transaction)
	DrainAll() []Transaction
	Len() int
}

var _ MemPool = (*TxMemPool)(nil)

// TxMemPool is an order-preserving in-memory pool. Transactions come
// out of DrainAll in the order they were added.
type TxMemPool struct {
	mu      sync.Mutex
	pending []Transaction
}

func NewTxMemPool() *TxMemPool {
	return &TxMemPool{
		pending: make([]Transaction, 0),
	}
}

func (m *TxMemPool) Add(tx Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = append(m.pending, tx)
}

// DrainAll returns every pending transaction and leaves the pool
// empty, atomically.
func (m *TxMemPool) DrainAll() []Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	drained := m.pending
	m.pending = make([]Transaction, 0)
	return drained
}

func (m *TxMemPool) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.pending)
}

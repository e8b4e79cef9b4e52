package chain

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RewardSender is the sender recorded on mining reward transactions.
const RewardSender = "0"

// RewardAmount is the amount credited to the miner per sealed block.
const RewardAmount int64 = 1

// Ledger owns the hash-linked chain and the pool of pending
// transactions. All mutations happen under one mutex so mining and
// consensus replacement never interleave.
type Ledger struct {
	mu     sync.Mutex
	blocks []Block

	pool   MemPool
	pow    *ProofOfWork
	nodeID string
}

// NewLedger constructs a ledger and immediately seals the genesis
// block with the fixed proof and sentinel previous hash.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		blocks: make([]Block, 0, 1),
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.pool == nil {
		l.pool = NewTxMemPool()
	}
	if l.pow == nil {
		l.pow = NewProofOfWork(DefaultDifficultyPrefix)
	}
	if l.nodeID == "" {
		l.nodeID = strings.ReplaceAll(uuid.New().String(), "-", "")
	}

	l.sealLocked(GenesisProof, GenesisPreviousHash)

	return l
}

func (l *Ledger) NodeID() string {
	return l.nodeID
}

func (l *Ledger) ProofOfWork() *ProofOfWork {
	return l.pow
}

func (l *Ledger) Pool() MemPool {
	return l.pool
}

// NewTransaction queues tx for inclusion in the next sealed block and
// returns the index that block is expected to carry. The index is a
// prediction, not a commitment.
func (l *Ledger) NewTransaction(tx Transaction) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pool.Add(tx)
	return l.blocks[len(l.blocks)-1].Index + 1
}

// SealBlock drains the pool into a new block linked to previousHash
// and appends it. An empty previousHash links to the hash of the
// current last block.
func (l *Ledger) SealBlock(proof int64, previousHash string) Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.sealLocked(proof, previousHash)
}

func (l *Ledger) sealLocked(proof int64, previousHash string) Block {
	if previousHash == "" {
		last := l.blocks[len(l.blocks)-1]
		previousHash = last.Hash()
	}

	block := Block{
		Index:        int64(len(l.blocks)) + 1,
		Timestamp:    float64(time.Now().UnixNano()) / float64(time.Second),
		Transactions: l.pool.DrainAll(),
		Proof:        proof,
		PreviousHash: previousHash,
	}

	l.blocks = append(l.blocks, block)

	return block
}

// Mine searches out a valid proof against the last block, credits the
// node with a reward transaction, and seals a new block. The reward
// is queued before sealing so it lands in the mined block, and the
// linkage hash is taken from the pre-seal last block.
func (l *Ledger) Mine() Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	last := l.blocks[len(l.blocks)-1]
	proof := l.pow.FindProof(last.Proof)

	l.pool.Add(Transaction{
		Sender:    RewardSender,
		Recipient: l.nodeID,
		Amount:    RewardAmount,
	})

	return l.sealLocked(proof, last.Hash())
}

// LastBlock returns the most recently appended block. The chain is
// never empty after NewLedger.
func (l *Ledger) LastBlock() Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.blocks[len(l.blocks)-1]
}

// Blocks returns a snapshot copy of the chain.
func (l *Ledger) Blocks() []Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	blocks := make([]Block, len(l.blocks))
	copy(blocks, l.blocks)
	return blocks
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.blocks)
}

// ReplaceChain substitutes the whole chain. Used only by the
// consensus resolver after validating the candidate.
func (l *Ledger) ReplaceChain(blocks []Block) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.blocks = make([]Block, len(blocks))
	copy(l.blocks, blocks)
}

package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minedChain(t *testing.T, pow *ProofOfWork, blocks int) []Block {
	t.Helper()

	l := NewLedger(WithProofOfWork(pow))
	for i := 1; i < blocks; i++ {
		l.Mine()
	}

	require.Equal(t, blocks, l.Len())
	return l.Blocks()
}

func TestValidChain(t *testing.T) {
	pow := NewProofOfWork("1")

	assert.True(t, ValidChain(pow, minedChain(t, pow, 3)))
}

func TestValidChainShort(t *testing.T) {
	pow := NewProofOfWork("1")

	assert.True(t, ValidChain(pow, nil))
	assert.True(t, ValidChain(pow, minedChain(t, pow, 1)))
}

func TestValidChainBrokenLinkage(t *testing.T) {
	pow := NewProofOfWork("1")
	blocks := minedChain(t, pow, 3)

	blocks[1].PreviousHash = "0000tampered"

	assert.False(t, ValidChain(pow, blocks))
}

func TestValidChainBadProof(t *testing.T) {
	pow := NewProofOfWork("1")
	blocks := minedChain(t, pow, 3)

	// break the proof on the last block but keep linkage intact
	for pow.ValidProof(blocks[1].Proof, blocks[2].Proof) {
		blocks[2].Proof++
	}
	blocks[2].PreviousHash = blocks[1].Hash()

	assert.False(t, ValidChain(pow, blocks))
}

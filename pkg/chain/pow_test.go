package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidProofMatchesDigest(t *testing.T) {
	pow := NewProofOfWork(DefaultDifficultyPrefix)

	for lastProof := int64(0); lastProof < 3; lastProof++ {
		for proof := int64(0); proof < 2000; proof++ {
			guess := strconv.FormatInt(lastProof, 10) + strconv.FormatInt(proof, 10)
			sum := sha256.Sum256([]byte(guess))
			want := strings.HasPrefix(hex.EncodeToString(sum[:]), "1234")

			assert.Equal(t, want, pow.ValidProof(lastProof, proof))
		}
	}
}

func TestFindProofSmallest(t *testing.T) {
	pow := NewProofOfWork("12")

	proof := pow.FindProof(100)

	require.True(t, pow.ValidProof(100, proof))
	for i := int64(0); i < proof; i++ {
		assert.False(t, pow.ValidProof(100, i), "proof %d should not be valid", i)
	}
}

func TestFindProofDefaultPrefix(t *testing.T) {
	pow := NewProofOfWork("")

	proof := pow.FindProof(100)

	assert.True(t, pow.ValidProof(100, proof))
	// deterministic for a fixed difficulty and input
	assert.Equal(t, proof, pow.FindProof(100))
}

package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// DefaultDifficultyPrefix is the hex prefix a proof digest must carry
// to be accepted. Four hex characters give an expected search of
// 65536 guesses per block.
const DefaultDifficultyPrefix = "1234"

// ProofOfWork finds and validates nonces against a fixed digest
// prefix. The zero value is not usable; construct with NewProofOfWork.
type ProofOfWork struct {
	prefix string
}

func NewProofOfWork(prefix string) *ProofOfWork {
	if prefix == "" {
		prefix = DefaultDifficultyPrefix
	}
	return &ProofOfWork{prefix: prefix}
}

// ValidProof reports whether the digest of the concatenated decimal
// forms of lastProof and proof carries the difficulty prefix. Pure;
// used both while mining and while re-validating foreign chains.
func (p *ProofOfWork) ValidProof(lastProof, proof int64) bool {
	guess := strconv.FormatInt(lastProof, 10) + strconv.FormatInt(proof, 10)
	sum := sha256.Sum256([]byte(guess))
	return strings.HasPrefix(hex.EncodeToString(sum[:]), p.prefix)
}

// FindProof returns the smallest non-negative proof valid against
// lastProof, by linear scan from zero. CPU bound; unbounded in the
// worst case.
func (p *ProofOfWork) FindProof(lastProof int64) int64 {
	var proof int64
	for !p.ValidProof(lastProof, proof) {
		proof++
	}
	return proof
}

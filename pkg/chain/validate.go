package chain

// ValidChain walks blocks from the second onward, requiring each to
// link to the digest of its predecessor and to carry a proof valid
// against the predecessor's proof. Chains of length zero or one are
// vacuously valid; the genesis block is exempt from linkage checks.
func ValidChain(pow *ProofOfWork, blocks []Block) bool {
	for i := 1; i < len(blocks); i++ {
		prev := blocks[i-1]
		curr := blocks[i]

		if curr.PreviousHash != prev.Hash() {
			return false
		}
		if !pow.ValidProof(prev.Proof, curr.Proof) {
			return false
		}
	}

	return true
}

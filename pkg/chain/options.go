package chain

type Option func(*Ledger)

func WithProofOfWork(p *ProofOfWork) Option {
	return func(l *Ledger) {
		l.pow = p
	}
}

func WithMemPool(m MemPool) Option {
	return func(l *Ledger) {
		l.pool = m
	}
}

func WithNodeID(id string) Option {
	return func(l *Ledger) {
		l.nodeID = id
	}
}

package node

import (
	"github.com/sirupsen/logrus"

	"github.com/ledgerd/ledgerd/pkg/chain"
)

type NodeOption func(*Node) error

func WithLedger(l *chain.Ledger) NodeOption {
	return func(n *Node) error {
		n.ledger = l
		return nil
	}
}

func WithRegistry(r *chain.Registry) NodeOption {
	return func(n *Node) error {
		n.registry = r
		return nil
	}
}

func WithResolver(r *chain.Resolver) NodeOption {
	return func(n *Node) error {
		n.resolver = r
		return nil
	}
}

func WithLogger(l *logrus.Logger) NodeOption {
	return func(n *Node) error {
		n.logger = l
		return nil
	}
}

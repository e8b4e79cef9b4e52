package node

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ledgerd/ledgerd/internal/config"
	"github.com/ledgerd/ledgerd/pkg/chain"
	"github.com/ledgerd/ledgerd/pkg/events"
)

// Node wires the ledger, peer registry, and consensus resolver into
// one running instance and owns the background sync loop.
type Node struct {
	ledger   *chain.Ledger
	registry *chain.Registry
	resolver *chain.Resolver
	events   *events.Bus

	logger *logrus.Logger
}

func (n *Node) Ledger() *chain.Ledger {
	return n.ledger
}

func (n *Node) Registry() *chain.Registry {
	return n.registry
}

func (n *Node) Resolver() *chain.Resolver {
	return n.resolver
}

func (n *Node) Events() *events.Bus {
	return n.events
}

func NewNode(ctx context.Context, opts ...NodeOption) (*Node, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	n := &Node{
		events: events.NewBus(),
	}

	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	if n.logger == nil {
		n.logger = logrus.StandardLogger()
	}
	if n.ledger == nil {
		n.ledger = chain.NewLedger(
			chain.WithNodeID(cfg.NodeID()),
			chain.WithProofOfWork(chain.NewProofOfWork(cfg.DifficultyPrefix())),
		)
	}
	if n.registry == nil {
		n.registry = chain.NewRegistry()
	}
	if n.resolver == nil {
		n.resolver = chain.NewResolver(n.ledger, n.registry,
			chain.WithPeerTimeout(cfg.PeerTimeout()),
			chain.WithLogger(logrus.NewEntry(n.logger)),
		)
	}

	n.bootstrap(cfg)

	if cfg.SyncInterval() > 0 {
		go n.syncLoop(ctx, cfg.SyncInterval())
	}

	return n, nil
}

func (n *Node) bootstrap(cfg *config.Config) {
	peers := cfg.Peers()
	if len(peers) == 0 {
		n.logger.Debug("no bootstrap peers")
		return
	}

	for _, peer := range peers {
		host, err := n.registry.Register(peer)
		if err != nil {
			n.logger.WithField("peer", peer).WithError(err).Warning("skipping bootstrap peer")
			continue
		}
		n.logger.WithField("peer", host).Debug("registered bootstrap peer")
	}
}

func (n *Node) Stop() error {
	n.logger.Warn("Shutting down")

	return nil
}

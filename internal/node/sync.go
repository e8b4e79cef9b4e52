package node

import (
	"context"
	"time"

	"github.com/jpillora/backoff"

	"github.com/ledgerd/ledgerd/pkg/events"
)

// syncLoop periodically reconciles the local chain against registered
// peers. While the registry is empty it waits with growing backoff
// instead of spinning on the interval.
func (n *Node) syncLoop(ctx context.Context, interval time.Duration) {
	bo := &backoff.Backoff{
		Min:    interval,
		Max:    5 * time.Minute,
		Jitter: true,
	}

	for {
		wait := interval
		if n.registry.Len() == 0 {
			wait = bo.Duration()
		} else {
			bo.Reset()
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		if n.registry.Len() == 0 {
			continue
		}

		if !n.resolver.Resolve(ctx) {
			continue
		}

		last := n.ledger.LastBlock()
		ev := events.New(events.TypeChainReplaced)
		ev.Block = &last
		ev.ChainLength = n.ledger.Len()
		n.events.Publish(ev)

		n.logger.WithField("length", ev.ChainLength).Info("adopted longer chain from peers")
	}
}

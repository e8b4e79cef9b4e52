package events

import (
	"sync"
	"time"

	"github.com/ledgerd/ledgerd/pkg/chain"
)

const (
	TypeBlockForged       = "block_forged"
	TypeTransactionQueued = "transaction_queued"
	TypeChainReplaced     = "chain_replaced"
)

// Event is the envelope published on the node's bus and streamed to
// websocket subscribers.
type Event struct {
	Type        string             `msgpack:"y"`
	CreatedTime int64              `msgpack:"c"`
	Block       *chain.Block       `msgpack:"b,omitempty"`
	Transaction *chain.Transaction `msgpack:"x,omitempty"`
	ChainLength int                `msgpack:"l,omitempty"`
}

func New(t string) Event {
	return Event{
		Type:        t,
		CreatedTime: time.Now().Unix(),
	}
}

// Bus fans events out to subscribers. Publishes never block: a
// subscriber that falls behind loses events rather than stalling the
// node.
type Bus struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[chan Event]struct{}),
	}
}

// Subscribe returns a receive channel and a cancel func. The channel
// is closed on cancel.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}

	return ch, cancel
}

func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

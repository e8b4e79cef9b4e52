package chain

import (
	"net/url"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var ErrInvalidAddress = errors.New("invalid node address")

// Registry is the set of known peer addresses, stored in normalized
// host[:port] form. Grow-only; unreachable peers are skipped during
// consensus, never pruned.
type Registry struct {
	mu    sync.RWMutex
	nodes map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		nodes: make(map[string]struct{}),
	}
}

// Register parses the network location out of a URL-like address and
// inserts it. Scheme and path are discarded; the scheme is optional
// ("192.168.1.1:5000/extra" registers "192.168.1.1:5000").
// Idempotent.
func (r *Registry) Register(address string) (string, error) {
	host := netloc(address)
	if host == "" {
		return "", errors.Wrap(ErrInvalidAddress, address)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nodes[host] = struct{}{}
	return host, nil
}

func netloc(address string) string {
	if u, err := url.Parse(address); err == nil && u.Host != "" {
		return u.Host
	}
	// no scheme: force the parser to treat it as an authority
	if u, err := url.Parse("//" + address); err == nil {
		return u.Host
	}
	return ""
}

// All returns a sorted snapshot of registered addresses.
func (r *Registry) All() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nodes := make([]string, 0, len(r.nodes))
	for n := range r.nodes {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.nodes)
}

package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultPeerTimeout bounds a single peer chain fetch during
// resolution.
const DefaultPeerTimeout = 5 * time.Second

// ChainPage is the wire form every peer serves at GET /chain.
type ChainPage struct {
	Chain  []Block `json:"chain"`
	Length int     `json:"length"`
}

// Fetcher retrieves a peer's full chain.
type Fetcher interface {
	FetchChain(ctx context.Context, address string) (*ChainPage, error)
}

// HTTPFetcher speaks the peer protocol over plain HTTP.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) FetchChain(ctx context.Context, address string) (*ChainPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://%s/chain", address), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building chain request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching chain")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d from %s", resp.StatusCode, address)
	}

	page := &ChainPage{}
	if err := json.NewDecoder(resp.Body).Decode(page); err != nil {
		return nil, errors.Wrap(err, "decoding chain")
	}

	return page, nil
}

// Resolver reconciles the local ledger against registered peers using
// the longest valid chain rule.
type Resolver struct {
	ledger   *Ledger
	registry *Registry
	fetcher  Fetcher
	timeout  time.Duration
	logger   *logrus.Entry
}

type ResolverOption func(*Resolver)

func WithFetcher(f Fetcher) ResolverOption {
	return func(r *Resolver) {
		r.fetcher = f
	}
}

func WithPeerTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.timeout = d
	}
}

func WithLogger(l *logrus.Entry) ResolverOption {
	return func(r *Resolver) {
		r.logger = l
	}
}

func NewResolver(ledger *Ledger, registry *Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		ledger:   ledger,
		registry: registry,
		timeout:  DefaultPeerTimeout,
		logger:   logrus.NewEntry(logrus.StandardLogger()),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.fetcher == nil {
		r.fetcher = NewHTTPFetcher(nil)
	}

	return r
}

// Resolve fetches every registered peer's chain concurrently, each
// under its own timeout, and adopts the best candidate that is both
// strictly longer than the local chain and fully valid. Peers that
// error are skipped. Returns true iff the local chain was replaced.
// Equal-length chains are never adopted.
func (r *Resolver) Resolve(ctx context.Context) bool {
	peers := r.registry.All()
	if len(peers) == 0 {
		return false
	}

	pow := r.ledger.ProofOfWork()

	var (
		mu        sync.Mutex
		maxLength = r.ledger.Len()
		newChain  []Block
	)

	var wg sync.WaitGroup
	for _, peer := range peers {
		wg.Add(1)
		go func(peer string) {
			defer wg.Done()

			fctx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			page, err := r.fetcher.FetchChain(fctx, peer)
			if err != nil {
				r.logger.WithError(err).WithField("peer", peer).Debug("skipping peer")
				return
			}

			mu.Lock()
			defer mu.Unlock()

			if page.Length > maxLength && ValidChain(pow, page.Chain) {
				maxLength = page.Length
				newChain = page.Chain
			}
		}(peer)
	}
	wg.Wait()

	if newChain == nil {
		return false
	}

	r.ledger.ReplaceChain(newChain)
	return true
}

package api

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/ledgerd/ledgerd/internal/node"
	"github.com/ledgerd/ledgerd/internal/utils/logging"
)

// Api serves the node's HTTP surface: mining, transaction submission,
// chain queries, peer registration, consensus resolution, and the
// websocket event feed.
type Api struct {
	n *node.Node
	s *http.Server

	limiter *rate.Limiter
}

type ApiOption func(*Api)

// WithRateLimit caps the API at rps requests per second with a burst
// of twice that. Zero leaves the API unlimited.
func WithRateLimit(rps float64) ApiOption {
	return func(a *Api) {
		if rps > 0 {
			a.limiter = rate.NewLimiter(rate.Limit(rps), int(2*rps))
		}
	}
}

func NewAPI(n *node.Node, opts ...ApiOption) (*Api, error) {
	a := &Api{n: n}

	for _, opt := range opts {
		opt(a)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/mine", a.handleMine)
	mux.HandleFunc("/transactions/new", a.handleNewTransaction)
	mux.HandleFunc("/chain", a.handleChain)
	mux.HandleFunc("/nodes/register", a.handleRegisterNodes)
	mux.HandleFunc("/nodes/resolve", a.handleResolve)
	mux.HandleFunc("/events", a.handleEvents)

	a.s = &http.Server{Handler: a.middleware(mux)}

	return a, nil
}

// Handler exposes the routed surface, middleware included.
func (a *Api) Handler() http.Handler {
	return a.s.Handler
}

func (a *Api) ListenAndServe(addr string) error {
	a.s.Addr = addr
	return a.s.ListenAndServe()
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.s.Shutdown(ctx)
}

func (a *Api) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.limiter != nil && !a.limiter.Allow() {
			writeJSON(w, http.StatusTooManyRequests, MessageResponse{Message: "too many requests"})
			return
		}

		logging.Entry().
			WithField("method", r.Method).
			WithField("path", r.URL.Path).
			Debug("api request")

		next.ServeHTTP(w, r)
	})
}

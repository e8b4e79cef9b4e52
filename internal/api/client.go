package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/ledgerd/ledgerd/pkg/chain"
)

// Client talks to a running daemon over its HTTP surface. Used by the
// CLI commands.
type Client struct {
	base string
	http *http.Client
}

func NewClient() (*Client, error) {
	base := viper.GetString("daemon_addr")
	if base == "" {
		return nil, errors.New("no daemon address configured")
	}

	return &Client{
		base: base,
		http: &http.Client{},
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return errors.Wrap(err, "encoding request")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "connecting to daemon")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg := MessageResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil && msg.Message != "" {
			return errors.Errorf("daemon: %s", msg.Message)
		}
		return errors.Errorf("daemon: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "decoding response")
}

func (c *Client) Mine(ctx context.Context) (*MineResponse, error) {
	out := &MineResponse{}
	if err := c.do(ctx, http.MethodGet, "/mine", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) NewTransaction(ctx context.Context, tx chain.Transaction) (*MessageResponse, error) {
	out := &MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/transactions/new", tx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Chain(ctx context.Context) (*chain.ChainPage, error) {
	out := &chain.ChainPage{}
	if err := c.do(ctx, http.MethodGet, "/chain", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RegisterNodes(ctx context.Context, addrs []string) (*RegisterNodesResponse, error) {
	out := &RegisterNodesResponse{}
	req := RegisterNodesRequest{Nodes: addrs}
	if err := c.do(ctx, http.MethodPost, "/nodes/register", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Resolve(ctx context.Context) (*ResolveResponse, error) {
	out := &ResolveResponse{}
	if err := c.do(ctx, http.MethodGet, "/nodes/resolve", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ledgerd/ledgerd/internal/utils/logging"
	"github.com/ledgerd/ledgerd/pkg/chain"
	"github.com/ledgerd/ledgerd/pkg/events"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type MineResponse struct {
	Message      string              `json:"message"`
	Index        int64               `json:"index"`
	Transactions []chain.Transaction `json:"transactions"`
	Proof        int64               `json:"proof"`
	PreviousHash string              `json:"previous_hash"`
}

type RegisterNodesRequest struct {
	Nodes []string `json:"nodes"`
}

type RegisterNodesResponse struct {
	Message    string   `json:"message"`
	TotalNodes []string `json:"total_nodes"`
}

type ResolveResponse struct {
	Message  string        `json:"message"`
	NewChain []chain.Block `json:"new_chain,omitempty"`
	Chain    []chain.Block `json:"chain,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.WithError(err).Error("encoding response")
	}
}

func (a *Api) handleMine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "method not allowed"})
		return
	}

	block := a.n.Ledger().Mine()

	ev := events.New(events.TypeBlockForged)
	ev.Block = &block
	ev.ChainLength = a.n.Ledger().Len()
	a.n.Events().Publish(ev)

	writeJSON(w, http.StatusOK, MineResponse{
		Message:      "New block forged.",
		Index:        block.Index,
		Transactions: block.Transactions,
		Proof:        block.Proof,
		PreviousHash: block.PreviousHash,
	})
}

func (a *Api) handleNewTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "method not allowed"})
		return
	}

	var req struct {
		Sender    *string `json:"sender"`
		Recipient *string `json:"recipient"`
		Amount    *int64  `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Sender == nil || req.Recipient == nil || req.Amount == nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "missing values"})
		return
	}

	tx := chain.Transaction{
		Sender:    *req.Sender,
		Recipient: *req.Recipient,
		Amount:    *req.Amount,
	}
	index := a.n.Ledger().NewTransaction(tx)

	ev := events.New(events.TypeTransactionQueued)
	ev.Transaction = &tx
	a.n.Events().Publish(ev)

	writeJSON(w, http.StatusCreated, MessageResponse{
		Message: fmt.Sprintf("Transaction will be added to Block %d", index),
	})
}

func (a *Api) handleChain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "method not allowed"})
		return
	}

	blocks := a.n.Ledger().Blocks()
	writeJSON(w, http.StatusOK, chain.ChainPage{
		Chain:  blocks,
		Length: len(blocks),
	})
}

func (a *Api) handleRegisterNodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "method not allowed"})
		return
	}

	var req RegisterNodesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Nodes) == 0 {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "please supply a valid list of nodes"})
		return
	}

	for _, addr := range req.Nodes {
		if _, err := a.n.Registry().Register(addr); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusCreated, RegisterNodesResponse{
		Message:    "New nodes have been added",
		TotalNodes: a.n.Registry().All(),
	})
}

func (a *Api) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "method not allowed"})
		return
	}

	replaced := a.n.Resolver().Resolve(r.Context())
	blocks := a.n.Ledger().Blocks()

	if !replaced {
		writeJSON(w, http.StatusOK, ResolveResponse{
			Message: "Our chain is authoritative",
			Chain:   blocks,
		})
		return
	}

	last := blocks[len(blocks)-1]
	ev := events.New(events.TypeChainReplaced)
	ev.Block = &last
	ev.ChainLength = len(blocks)
	a.n.Events().Publish(ev)

	writeJSON(w, http.StatusOK, ResolveResponse{
		Message:  "Our chain was replaced",
		NewChain: blocks,
	})
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerd/ledgerd/internal/api"
	"github.com/ledgerd/ledgerd/internal/utils/logging"
	"github.com/ledgerd/ledgerd/pkg/chain"
)

var (
	mineCmd = &cobra.Command{
		Use:   "mine",
		Short: "forge a new block on the daemon",
		Run:   runMine,
	}

	txCmd = &cobra.Command{
		Use:   "tx <sender> <recipient> <amount>",
		Short: "submit a transaction",
		Args:  cobra.ExactArgs(3),
		Run:   runTx,
	}

	chainCmd = &cobra.Command{
		Use:   "chain",
		Short: "print the full chain",
		Run:   runChain,
	}

	peersCmd = &cobra.Command{
		Use:   "peers",
		Short: "peer commands",
	}

	peers_addCmd = &cobra.Command{
		Use:   "add <address>...",
		Short: "register peer addresses",
		Args:  cobra.MinimumNArgs(1),
		Run:   runPeersAdd,
	}

	resolveCmd = &cobra.Command{
		Use:   "resolve",
		Short: "run longest-chain consensus against registered peers",
		Run:   runResolve,
	}
)

func clientCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func runMine(cmd *cobra.Command, args []string) {
	ctx, cancel := clientCtx()
	defer cancel()

	c, err := api.NewClient()
	if err != nil {
		logging.WithError(err).Error("constructing client")
		return
	}

	res, err := c.Mine(ctx)
	if err != nil {
		logging.WithError(err).Error("mining")
		return
	}

	s, _ := json.Marshal(res)
	fmt.Printf("%s\n", s)
}

func runTx(cmd *cobra.Command, args []string) {
	ctx, cancel := clientCtx()
	defer cancel()

	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		logging.WithError(err).Error("parsing amount")
		return
	}

	c, err := api.NewClient()
	if err != nil {
		logging.WithError(err).Error("constructing client")
		return
	}

	res, err := c.NewTransaction(ctx, chain.Transaction{
		Sender:    args[0],
		Recipient: args[1],
		Amount:    amount,
	})
	if err != nil {
		logging.WithError(err).Error("submitting transaction")
		return
	}

	fmt.Println(res.Message)
}

func runChain(cmd *cobra.Command, args []string) {
	ctx, cancel := clientCtx()
	defer cancel()

	c, err := api.NewClient()
	if err != nil {
		logging.WithError(err).Error("constructing client")
		return
	}

	res, err := c.Chain(ctx)
	if err != nil {
		logging.WithError(err).Error("fetching chain")
		return
	}

	s, _ := json.Marshal(res)
	fmt.Printf("%s\n", s)
}

func runPeersAdd(cmd *cobra.Command, args []string) {
	ctx, cancel := clientCtx()
	defer cancel()

	c, err := api.NewClient()
	if err != nil {
		logging.WithError(err).Error("constructing client")
		return
	}

	res, err := c.RegisterNodes(ctx, args)
	if err != nil {
		logging.WithError(err).Error("registering peers")
		return
	}

	s, _ := json.Marshal(res.TotalNodes)
	fmt.Printf("%s\n", s)
}

func runResolve(cmd *cobra.Command, args []string) {
	ctx, cancel := clientCtx()
	defer cancel()

	c, err := api.NewClient()
	if err != nil {
		logging.WithError(err).Error("constructing client")
		return
	}

	res, err := c.Resolve(ctx)
	if err != nil {
		logging.WithError(err).Error("resolving")
		return
	}

	fmt.Println(res.Message)
}

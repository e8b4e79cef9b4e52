package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledgerd/ledgerd/internal/api"
	"github.com/ledgerd/ledgerd/internal/config"
	"github.com/ledgerd/ledgerd/internal/node"
	"github.com/ledgerd/ledgerd/internal/utils/logging"
)

var (
	daemonCmd = &cobra.Command{
		Use:   "daemon",
		RunE:  runDaemon,
		Short: "run the node daemon",
	}
)

func init() {
	daemonCmd.Flags().StringP("api-addr", "a", ":5000", "api listen address")
	viper.BindPFlag("api_addr", daemonCmd.Flags().Lookup("api-addr"))

	daemonCmd.Flags().StringSliceP("peer", "p", nil, "peer address to register at startup")
	viper.BindPFlag("peers", daemonCmd.Flags().Lookup("peer"))
}

func runDaemon(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	n, err := node.NewNode(ctx)
	if err != nil {
		return errors.Wrap(err, "initing node")
	}

	a, err := api.NewAPI(n, api.WithRateLimit(cfg.RateLimit()))
	if err != nil {
		return errors.Wrap(err, "initing api")
	}
	defer a.Shutdown(ctx)

	errCh := make(chan error)

	go func() {
		logging.Entry().
			WithField("addr", cfg.APIAddr()).
			WithField("node", cfg.NodeID()).
			Info("Starting listening")

		if err := a.ListenAndServe(cfg.APIAddr()); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-waitExit(ctx):
		return n.Stop()
	}
}

func waitExit(ctx context.Context) <-chan os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return sigs
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "ledgerd",
		Short: "a minimal longest-chain proof-of-work ledger node",
		RunE:  runDaemon,
	}
)

func Execute() error {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase verbosity")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.PersistentFlags().StringP("daemon-addr", "d", "http://127.0.0.1:5000", "address of the daemon api")
	viper.BindPFlag("daemon_addr", rootCmd.PersistentFlags().Lookup("daemon-addr"))

	regCommands()

	return rootCmd.Execute()
}

package cli

func regCommands() {
	//Peers
	peersCmd.AddCommand(peers_addCmd)

	//Root
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(peersCmd)
	rootCmd.AddCommand(resolveCmd)
}

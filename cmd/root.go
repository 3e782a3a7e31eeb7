package cmd

import "github.com/spf13/cobra"

const lockFile = "flexpool-info.lock"

var RootCmd = &cobra.Command{
	Use:   "flexpool-info",
	Short: "Flexpool miner statistics sensor",
}

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file to use.")
}

func Run(args []string) error {
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

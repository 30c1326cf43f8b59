package main

import "github.com/spf13/cobra"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play the built-in demo presentation",
	Run: func(cmd *cobra.Command, args []string) {
		opts := presentOptions(cmd)
		opts.Demo = true
		present(opts)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	addPresentFlags(demoCmd)
}

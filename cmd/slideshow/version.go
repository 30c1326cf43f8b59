package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/slideshow"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of slideshow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("slideshow version %s\n", strings.TrimSpace(slideshow.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

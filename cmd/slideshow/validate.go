package main

import (
	"fmt"
	"os"

	"github.com/aretw0/slideshow/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <deck.yaml>",
	Short: "Check a deck file without playing it",
	Long:  `Parses the deck and builds every action, reporting the first invalid one.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.Validate(args[0], os.Stdout); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Deck is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

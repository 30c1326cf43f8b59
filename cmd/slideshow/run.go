package main

import (
	"fmt"
	"os"

	"github.com/aretw0/slideshow/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [deck.yaml]",
	Short: "Play a deck file",
	Long:  `Plays the slides of a YAML deck. Without a deck the built-in demo is shown.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := presentOptions(cmd)
		opts.DeckPath, _ = cmd.Flags().GetString("deck")
		if !cmd.Flags().Changed("deck") && len(args) > 0 {
			opts.DeckPath = args[0]
		}
		present(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("deck", "f", "", "Path to the deck file")
	addPresentFlags(runCmd)
	addPresentFlags(rootCmd)

	// 'run' is the default if no command is provided
	rootCmd.Args = runCmd.Args
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		opts := presentOptions(cmd)
		if len(args) > 0 {
			opts.DeckPath = args[0]
		}
		present(opts)
	}
}

func present(opts cli.RunOptions) {
	if err := cli.Execute(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func addPresentFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("clear-on-error", false, "Clear the screen when a slide fails")
	cmd.Flags().Bool("no-banner", false, "Skip the opening banner slide")
	cmd.Flags().Bool("plain", false, "Disable colors and styles")
	cmd.Flags().Bool("interruptible", true, "Let Ctrl+C end the presentation while waiting for a key")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print system messages")
	cmd.Flags().String("markdown-style", "", "Glamour style for markdown actions (dark, light, notty, ...)")
	cmd.Flags().Int("width", 80, "Word wrap width for markdown actions")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics and status on this address (e.g. :2112)")
}

func presentOptions(cmd *cobra.Command) cli.RunOptions {
	debug, _ := cmd.Flags().GetBool("debug")
	clearOnError, _ := cmd.Flags().GetBool("clear-on-error")
	noBanner, _ := cmd.Flags().GetBool("no-banner")
	plain, _ := cmd.Flags().GetBool("plain")
	interruptible, _ := cmd.Flags().GetBool("interruptible")
	quiet, _ := cmd.Flags().GetBool("quiet")
	style, _ := cmd.Flags().GetString("markdown-style")
	width, _ := cmd.Flags().GetInt("width")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	return cli.RunOptions{
		Debug:         debug,
		ClearOnError:  clearOnError,
		NoBanner:      noBanner,
		Plain:         plain,
		Interruptible: interruptible,
		Quiet:         quiet,
		MarkdownStyle: style,
		Width:         width,
		MetricsAddr:   metricsAddr,
	}
}

package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pegsol",
		Short: "CLI tool for the peg solitaire API",
		Long: `pegsol is a CLI tool for playing triangular peg solitaire.

It drives games on a server through the JSON API, streams live updates
for a game, and can also play a game locally with no server at all.

Control tokens for games you create are saved per game in the token
directory, so later commands on the same game need no extra flags.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Tokens are loaded per game by each command
			client = NewClient(cfg.ServerURL, cfg.Token)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: PEGSOL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Game control token, overrides saved tokens (env: PEGSOL_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cfg.TokenDir, "token-dir", cfg.TokenDir, "Directory holding saved game tokens (env: PEGSOL_TOKEN_DIR)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newClickCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newMovesCmd())
	rootCmd.AddCommand(newHintCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newRestartCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newTUICmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		NewOutput(cfg.Output, os.Stdout, os.Stderr).PrintError(err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func gamePath(gameID, suffix string) string {
	return "/api/v1/games/" + url.PathEscape(gameID) + suffix
}

// useGameToken points the client at the control token for a game
func useGameToken(gameID string) error {
	token, err := cfg.LoadToken(gameID)
	if err != nil {
		return fmt.Errorf("failed to load token: %w", err)
	}
	client.SetToken(token)
	return nil
}

// parseCoords parses row/col arguments
func parseCoords(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		out[i] = n
	}
	return out, nil
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game and save its control token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CreateGameResult

			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.Game.ID, result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a game's board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(gamePath(args[0], ""), &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <game-id> <row> <col>",
		Short: "Select a peg to move with click",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords, err := parseCoords(args[1:])
			if err != nil {
				return err
			}
			if err := useGameToken(args[0]); err != nil {
				return err
			}

			req := Position{Row: coords[0], Col: coords[1]}
			var result SelectResult

			if err := client.Post(gamePath(args[0], "/select"), req, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newClickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "click <game-id> <row> <col>",
		Short: "Click a hole: select a peg, or jump the selected peg there",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords, err := parseCoords(args[1:])
			if err != nil {
				return err
			}
			if err := useGameToken(args[0]); err != nil {
				return err
			}

			req := Position{Row: coords[0], Col: coords[1]}
			var result ClickResult

			if err := client.Post(gamePath(args[0], "/click"), req, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <game-id> <from-row> <from-col> <to-row> <to-col>",
		Short: "Jump a peg",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords, err := parseCoords(args[1:])
			if err != nil {
				return err
			}
			if err := useGameToken(args[0]); err != nil {
				return err
			}

			req := Move{
				From: Position{Row: coords[0], Col: coords[1]},
				To:   Position{Row: coords[2], Col: coords[3]},
			}
			var result MoveResult

			if err := client.Post(gamePath(args[0], "/moves"), req, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newMovesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves <game-id>",
		Short: "List every legal jump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MovesResult

			if err := client.Get(gamePath(args[0], "/moves"), &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newHintCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "hint <game-id>",
		Short: "Suggest a legal jump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := useGameToken(args[0]); err != nil {
				return err
			}

			path := gamePath(args[0], "/hint")
			if strategy != "" {
				path += "?strategy=" + url.QueryEscape(strategy)
			}
			var result HintResult

			if err := client.Get(path, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Hint strategy: random, first")

	return cmd
}

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <game-id>",
		Short: "Take back the last jump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := useGameToken(args[0]); err != nil {
				return err
			}

			var result UndoResult

			if err := client.Post(gamePath(args[0], "/undo"), nil, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart <game-id>",
		Short: "Reset the board to the starting position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := useGameToken(args[0]); err != nil {
				return err
			}

			var result Game

			if err := client.Post(gamePath(args[0], "/restart"), nil, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game and forget its token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := useGameToken(args[0]); err != nil {
				return err
			}

			if err := client.Delete(gamePath(args[0], "")); err != nil {
				return err
			}

			if err := cfg.RemoveToken(args[0]); err != nil {
				return fmt.Errorf("failed to remove token: %w", err)
			}

			newOutput(cmd).PrintMessage("Game deleted")
			return nil
		},
	}
}

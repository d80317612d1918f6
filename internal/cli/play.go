package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/pegsolitaire-go/internal/dependencies/random"
	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/services/engine"
	"github.com/mcoot/pegsolitaire-go/internal/services/hint"
)

const playHelp = `Commands:
  move <from-row> <from-col> <to-row> <to-col>   (m)  jump a peg
  click <row> <col>                               (c)  select a peg or jump the selection
  undo                                            (u)  take back the last jump
  restart                                         (r)  reset the board
  hint [random|first]                             (h)  suggest a jump
  moves                                                list legal jumps
  quit                                            (q)  leave
`

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game locally without a server",
		Long:  "Play a game in the terminal. No server is needed.\n\n" + playHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			rnd := random.New()
			session := newLocalSession(engine.New(logger), hint.Strategies(rnd))
			return session.run(cmd.InOrStdin(), newOutput(cmd))
		},
	}
}

// localSession is an in-process game driven by typed commands
type localSession struct {
	engine     *engine.Service
	strategies map[string]hint.Strategy
	state      model.GameState
	moveCount  int
}

func newLocalSession(eng *engine.Service, strategies map[string]hint.Strategy) *localSession {
	return &localSession{
		engine:     eng,
		strategies: strategies,
		state:      eng.NewState(),
	}
}

func (s *localSession) run(in io.Reader, out *Output) error {
	out.Print(s.game())
	out.PrintMessage(`Type "help" for commands.`)

	scanner := bufio.NewScanner(in)
	for {
		if out.format != "json" {
			out.printf("> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "q" {
			return nil
		}

		if err := s.exec(fields, out); err != nil {
			out.PrintError(err)
		}
	}
}

// exec runs a single command line against the session
func (s *localSession) exec(fields []string, out *Output) error {
	name, args := fields[0], fields[1:]

	switch name {
	case "help", "?":
		out.PrintMessage(playHelp)
		return nil

	case "move", "m":
		if err := s.requirePlaying(); err != nil {
			return err
		}
		coords, err := parseArgs(args, 4)
		if err != nil {
			return err
		}
		outcome, err := s.engine.AttemptMove(&s.state,
			model.Position{Row: coords[0], Col: coords[1]},
			model.Position{Row: coords[2], Col: coords[3]})
		if err != nil {
			return err
		}
		s.moveCount++
		out.Print(MoveResult{Outcome: outcomeFromModel(outcome), Game: s.game()})
		return nil

	case "click", "c":
		if err := s.requirePlaying(); err != nil {
			return err
		}
		coords, err := parseArgs(args, 2)
		if err != nil {
			return err
		}
		outcome, err := s.engine.Click(&s.state, model.Position{Row: coords[0], Col: coords[1]})
		if err != nil {
			return err
		}
		result := ClickResult{Moved: outcome != nil, Game: s.game()}
		if outcome != nil {
			s.moveCount++
			o := outcomeFromModel(outcome)
			result.Outcome = &o
			result.Game = s.game()
		}
		out.Print(result)
		return nil

	case "undo", "u":
		undone := s.engine.Undo(&s.state)
		if undone {
			s.moveCount--
		}
		out.Print(UndoResult{Undone: undone, Game: s.game()})
		return nil

	case "restart", "r":
		s.engine.Reset(&s.state)
		s.moveCount = 0
		out.Print(s.game())
		return nil

	case "hint", "h":
		if err := s.requirePlaying(); err != nil {
			return err
		}
		strategy := model.DefaultHintStrategy
		if len(args) > 0 {
			strategy = args[0]
		}
		chooser, ok := s.strategies[strategy]
		if !ok {
			return model.ErrUnknownHintStrategy
		}
		move, ok := chooser.ChooseMove(s.state.Board)
		if !ok {
			return model.ErrNoValidMoves
		}
		out.Print(HintResult{Move: moveFromModel(move), Strategy: strategy})
		return nil

	case "moves":
		result := MovesResult{}
		for _, m := range s.engine.ValidMoves(s.state.Board) {
			result.Moves = append(result.Moves, moveFromModel(m))
		}
		out.Print(result)
		return nil

	default:
		return fmt.Errorf("unknown command %q, type \"help\" for commands", name)
	}
}

func (s *localSession) requirePlaying() error {
	if s.state.Status.IsTerminal() {
		return errors.New("the game is over, undo or restart to keep playing")
	}
	return nil
}

// game converts the session state to the same shape the API returns
func (s *localSession) game() Game {
	g := Game{
		Status:        string(s.state.Status),
		Message:       s.state.Message,
		PegsRemaining: s.state.Board.PegCount(),
		MoveCount:     s.moveCount,
		CanUndo:       s.state.CanUndo(),
		HasValidMoves: s.engine.HasValidMoves(s.state.Board),
	}
	g.Board = make([][]string, len(s.state.Board.Holes))
	for row, holes := range s.state.Board.Holes {
		g.Board[row] = make([]string, len(holes))
		for col, hole := range holes {
			g.Board[row][col] = string(hole)
		}
	}
	if s.state.Selection != nil {
		g.Selection = &Position{Row: s.state.Selection.Row, Col: s.state.Selection.Col}
	}
	return g
}

func parseArgs(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("expected %d coordinates, got %d", want, len(args))
	}
	return parseCoords(args)
}

func moveFromModel(m model.Move) Move {
	return Move{
		From: Position{Row: m.From.Row, Col: m.From.Col},
		To:   Position{Row: m.To.Row, Col: m.To.Col},
	}
}

func outcomeFromModel(o *model.MoveOutcome) MoveOutcome {
	return MoveOutcome{
		Move:          moveFromModel(o.Move),
		Verdict:       string(o.Verdict),
		Message:       o.Message,
		PegsRemaining: o.PegsRemaining,
	}
}

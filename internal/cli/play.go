package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/spf13/cobra"
)

func newPlayCmd(manager gameManager, conf *config.Config, output func(*cobra.Command) *Output) *cobra.Command {
	var (
		size   int
		resume string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long: `Play an interactive game reading moves from standard input.

Enter "ROW COL" to place the current mark, "reset" to start over
and "quit" to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var (
				game *entity.Snapshot
				err  error
			)
			if resume != "" {
				game, err = manager.GetGame(ctx, resume)
			} else {
				if err = checkBoardSize(size); err != nil {
					return err
				}
				game, err = manager.NewGame(ctx, size)
			}
			if err != nil {
				return err
			}

			return runPlayLoop(ctx, manager, game, cmd.InOrStdin(), output(cmd))
		},
	}

	cmd.Flags().IntVar(&size, "size", conf.BoardSize, "Board size N for an N x N board")
	cmd.Flags().StringVar(&resume, "resume", "", "Resume the stored game with this id")

	return cmd
}

func runPlayLoop(ctx context.Context, manager gameManager, game *entity.Snapshot, in io.Reader, out *Output) error {
	out.PrintMessage("Game " + game.ID)
	out.PrintGame(game)

	lines := readLines(ctx, in)
	for {
		var next inputLine
		select {
		case <-ctx.Done():
			return ctx.Err()
		case input, ok := <-lines:
			if !ok {
				return nil
			}
			next = input
		}

		if next.err != nil {
			return fmt.Errorf("failed to read input: %w", next.err)
		}

		line := strings.TrimSpace(next.text)

		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			out.PrintMessage("Bye.")
			return nil
		case "r", "reset":
			reset, err := manager.ResetGame(ctx, game.ID)
			if err != nil {
				return err
			}

			game = reset
			out.PrintGame(game)
			continue
		}

		if game.IsFinished() {
			out.PrintMessage(`The game is over. Type "reset" to play again or "quit" to leave.`)
			continue
		}

		row, col, err := ParseCell(line)
		if err != nil {
			out.PrintMessage(err.Error())
			continue
		}

		updated, err := manager.MakeTurn(ctx, game.ID, row, col)
		if err != nil {
			if errors.Is(err, apperror.ErrIllegalMove) || errors.Is(err, apperror.ErrOutOfBounds) {
				out.PrintMessage(fmt.Sprintf("Move rejected: %v", describeMoveError(err)))
				continue
			}

			return err
		}

		game = updated
		out.PrintGame(game)

		if game.IsFinished() {
			out.PrintMessage(`Type "reset" to play again or "quit" to leave.`)
		}
	}
}

type inputLine struct {
	text string
	err  error
}

// readLines - feeds lines of in to the returned channel until EOF, a read error or ctx is done.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		send := func(line inputLine) bool {
			select {
			case lines <- line:
				return true
			case <-ctx.Done():
				return false
			}
		}

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if !send(inputLine{text: scanner.Text()}) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			send(inputLine{err: err})
		}
	}()

	return lines
}

func describeMoveError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		return "the game is already finished"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "that cell is already taken"
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "that cell is off the board"
	default:
		return err.Error()
	}
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/spf13/cobra"
)

func newNewCmd(manager gameManager, conf *config.Config, output func(*cobra.Command) *Output) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a stored game and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkBoardSize(size); err != nil {
				return err
			}

			game, err := manager.NewGame(cmd.Context(), size)
			if err != nil {
				return err
			}

			out := output(cmd)
			out.PrintMessage("Game " + game.ID)
			out.PrintGame(game)

			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", conf.BoardSize, "Board size N for an N x N board")

	return cmd
}

func newShowCmd(manager gameManager, output func(*cobra.Command) *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a stored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := manager.GetGame(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			output(cmd).PrintGame(game)

			return nil
		},
	}
}

func newMoveCmd(manager gameManager, output func(*cobra.Command) *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "move <game-id> <row> <col>",
		Short: "Place the current mark on a stored game",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: row %q", ErrBadInput, args[1])
			}

			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("%w: col %q", ErrBadInput, args[2])
			}

			game, err := manager.MakeTurn(cmd.Context(), args[0], row-1, col-1)
			if err != nil {
				return err
			}

			output(cmd).PrintGame(game)

			return nil
		},
	}
}

func newResetCmd(manager gameManager, output func(*cobra.Command) *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <game-id>",
		Short: "Clear a stored game and pick a new starting mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := manager.ResetGame(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			output(cmd).PrintGame(game)

			return nil
		},
	}
}

func newAbandonCmd(manager gameManager, output func(*cobra.Command) *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <game-id>",
		Short: "Delete a stored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := manager.AbandonGame(cmd.Context(), args[0]); err != nil {
				return err
			}

			output(cmd).PrintMessage("Game " + args[0] + " abandoned.")

			return nil
		},
	}
}

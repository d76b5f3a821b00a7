package cli

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/spf13/cobra"
)

type gameManager interface {
	NewGame(ctx context.Context, size int) (*entity.Snapshot, error)
	GetGame(ctx context.Context, id string) (*entity.Snapshot, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*entity.Snapshot, error)
	ResetGame(ctx context.Context, id string) (*entity.Snapshot, error)
	AbandonGame(ctx context.Context, id string) error
}

// NewRootCmd creates the tictactoe command tree on top of manager.
func NewRootCmd(manager gameManager, conf *config.Config) *cobra.Command {
	var format string

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe on an N x N board in the terminal",
		Long: `tictactoe plays two-player tic-tac-toe on a square board of any size.
A player wins by filling a whole row, column or diagonal.

Cells are addressed as "ROW COL", counting from 1 at the top left.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&format, "output", "o", formatText, "Output format: text, json")

	output := func(cmd *cobra.Command) *Output {
		return NewOutput(cmd.OutOrStdout(), format)
	}

	rootCmd.AddCommand(newPlayCmd(manager, conf, output))
	rootCmd.AddCommand(newNewCmd(manager, conf, output))
	rootCmd.AddCommand(newShowCmd(manager, output))
	rootCmd.AddCommand(newMoveCmd(manager, output))
	rootCmd.AddCommand(newResetCmd(manager, output))
	rootCmd.AddCommand(newAbandonCmd(manager, output))

	return rootCmd
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg/mocks"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *usecase.GameManager {
	return usecase.NewGameManager(suite.NopLogger(), repository.NewMemoryGameRepository(), mocks.NewMockRandom())
}

func run(t *testing.T, manager gameManager, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCmd(manager, &config.Config{BoardSize: 3})
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestPlay(t *testing.T) {
	t.Run("Plays a game to a win and resets", func(t *testing.T) {
		// Given: a script with rejected moves and a top row win for X
		script := strings.Join([]string{
			"1 1",
			"1 1",
			"foo",
			"4 1",
			"2 1",
			"1,2",
			"2 2",
			"1 3",
			"3 3",
			"reset",
			"quit",
		}, "\n")

		// When: playing it
		out, err := run(t, newTestManager(), script, "play")
		require.NoError(t, err)

		// Then: every rejection is explained and the win is announced
		assert.Contains(t, out, "Move rejected: that cell is already taken")
		assert.Contains(t, out, `expected "ROW COL"`)
		assert.Contains(t, out, "Move rejected: that cell is off the board")
		assert.Contains(t, out, "X wins!")
		assert.Contains(t, out, "The game is over.")
		assert.Contains(t, out, "Bye.")

		afterReset := out[strings.LastIndex(out, "The game is over."):]
		assert.Contains(t, afterReset, "X to move.")
	})

	t.Run("Ends at end of input", func(t *testing.T) {
		out, err := run(t, newTestManager(), "2 2\n", "play", "--size", "4")
		require.NoError(t, err)

		assert.Contains(t, out, "  1 2 3 4\n")
		assert.Contains(t, out, "O to move.")
	})

	t.Run("Resumes a stored game", func(t *testing.T) {
		manager := newTestManager()
		game, err := manager.NewGame(context.Background(), 3)
		require.NoError(t, err)
		_, err = manager.MakeTurn(context.Background(), game.ID, 0, 0)
		require.NoError(t, err)

		out, err := run(t, manager, "quit\n", "play", "--resume", game.ID)
		require.NoError(t, err)

		assert.Contains(t, out, "1 X . .")
		assert.Contains(t, out, "O to move.")
	})

	t.Run("Unknown game to resume", func(t *testing.T) {
		_, err := run(t, newTestManager(), "", "play", "--resume", "missing")
		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestPlay_StopsOnCancel(t *testing.T) {
	// Given: a play loop waiting on input that never arrives
	manager := newTestManager()
	game, err := manager.NewGame(context.Background(), 3)
	require.NoError(t, err)

	in, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		var out bytes.Buffer
		done <- runPlayLoop(ctx, manager, game, in, NewOutput(&out, formatText))
	}()

	// When: the context is cancelled
	cancel()

	// Then: the loop returns without waiting for a line
	select {
	case err = <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("play loop did not return after cancel")
	}
}

func TestBoardSizeFlag(t *testing.T) {
	for _, size := range []string{"0", "1", "2", "33", "64", "100000"} {
		t.Run("new rejects "+size, func(t *testing.T) {
			_, err := run(t, newTestManager(), "", "new", "--size", size)
			assert.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		})

		t.Run("play rejects "+size, func(t *testing.T) {
			_, err := run(t, newTestManager(), "", "play", "--size", size)
			assert.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		})
	}

	for _, size := range []string{"3", "32"} {
		t.Run("new accepts "+size, func(t *testing.T) {
			out, err := run(t, newTestManager(), "", "new", "--size", size)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, "Game "))
		})
	}
}

func TestSessionCommands(t *testing.T) {
	manager := newTestManager()

	// Given: a stored game created through the CLI
	out, err := run(t, manager, "", "new", "-o", "json")
	require.NoError(t, err)

	decoder := json.NewDecoder(strings.NewReader(out))
	var message map[string]string
	require.NoError(t, decoder.Decode(&message))
	var game entity.Snapshot
	require.NoError(t, decoder.Decode(&game))
	require.NotEmpty(t, game.ID)
	assert.Equal(t, "Game "+game.ID, message["message"])

	// When: X moves through the CLI
	out, err = run(t, manager, "", "move", game.ID, "2", "2")
	require.NoError(t, err)

	// Then: the stored game shows the move
	assert.Contains(t, out, "2 . X .")

	out, err = run(t, manager, "", "show", game.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "O to move.")

	_, err = run(t, manager, "", "move", game.ID, "2", "2")
	require.ErrorIs(t, err, apperror.ErrCellOccupied)

	_, err = run(t, manager, "", "move", game.ID, "two", "2")
	require.ErrorIs(t, err, ErrBadInput)

	out, err = run(t, manager, "", "reset", game.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "2 . . .")

	out, err = run(t, manager, "", "abandon", game.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "abandoned")

	_, err = run(t, manager, "", "show", game.ID)
	assert.ErrorIs(t, err, apperror.ErrGameNotFound)
}

func TestParseCell(t *testing.T) {
	row, col, err := ParseCell("2 3")
	require.NoError(t, err)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)

	row, col, err = ParseCell(" 1, 1 ")
	require.NoError(t, err)
	assert.Zero(t, row)
	assert.Zero(t, col)

	for _, input := range []string{"", "1", "1 2 3", "a 1", "1 b"} {
		_, _, err = ParseCell(input)
		assert.ErrorIs(t, err, ErrBadInput, "input %q", input)
	}
}

func TestRenderBoard(t *testing.T) {
	rows := [][]entity.Cell{
		{"X", "", ""},
		{"", "O", ""},
		{"", "", ""},
	}

	expected := "  1 2 3\n" +
		"1 X . .\n" +
		"2 . O .\n" +
		"3 . . .\n"

	assert.Equal(t, expected, RenderBoard(rows))
}

func TestDescribeStatus(t *testing.T) {
	assert.Equal(t, "O to move.", DescribeStatus(&entity.Snapshot{Turn: entity.PlayerO, Status: entity.InProgress()}))
	assert.Equal(t, "X wins!", DescribeStatus(&entity.Snapshot{Status: entity.Won(entity.PlayerX)}))
	assert.Equal(t, "It's a draw.", DescribeStatus(&entity.Snapshot{Status: entity.Draw()}))
}

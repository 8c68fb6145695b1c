package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Game against a person", func(t *testing.T) {
		// When: a new pvp game is created
		game := NewGame("123", ModePvP, DifficultyNormal)

		// Then: it starts with X on an empty board
		expectedGame := &Game{
			ID:         "123",
			Board:      Board{},
			Turn:       PlayerX,
			Status:     StatusOngoing,
			Mode:       ModePvP,
			Difficulty: DifficultyNormal,
			Players:    map[string]string{},
		}

		require.Equal(t, expectedGame, game)
		assert.True(t, game.IsActive())
		assert.False(t, game.IsWithBot())
	})

	t.Run("Game against the computer names the bot", func(t *testing.T) {
		// When: a new pvai game is created
		game := NewGame("123", ModePvAI, DifficultyHard)

		// Then: O belongs to the computer
		assert.True(t, game.IsWithBot())
		assert.Equal(t, "Computer", game.PlayerName(BotMark))
		assert.False(t, game.IsBotTurn())
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game with names
	game := NewGame("123", ModePvAI, DifficultyEasy)
	game.SetPlayerName(PlayerX, "alice")
	game.Board = Board{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO}
	game.Finish(PlayerX)

	// When: the game is reset twice
	game.Reset()
	game.Reset()

	// Then: the board is fresh and settings survive
	assert.Equal(t, Board{}, game.Board)
	assert.Equal(t, PlayerX, game.Turn)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Empty(t, game.Winner)
	assert.Equal(t, ModePvAI, game.Mode)
	assert.Equal(t, DifficultyEasy, game.Difficulty)
	assert.Equal(t, "alice", game.PlayerName(PlayerX))
}

func TestGame_StatusMessage(t *testing.T) {
	t.Run("Winner with a name", func(t *testing.T) {
		game := NewGame("1", ModePvP, DifficultyNormal)
		game.SetPlayerName(PlayerX, "alice")
		game.Finish(PlayerX)

		assert.Equal(t, "Player X (alice) has won!", game.StatusMessage())
	})

	t.Run("Winner without a name", func(t *testing.T) {
		game := NewGame("1", ModePvP, DifficultyNormal)
		game.Finish(PlayerO)

		assert.Equal(t, "Player O has won!", game.StatusMessage())
	})

	t.Run("Draw", func(t *testing.T) {
		game := NewGame("1", ModePvP, DifficultyNormal)
		game.Finish(PlayerTie)

		assert.Equal(t, "Game ended in a draw!", game.StatusMessage())
	})

	t.Run("Ongoing", func(t *testing.T) {
		game := NewGame("1", ModePvAI, DifficultyNormal)
		game.Turn = PlayerO

		assert.Equal(t, "Player O (Computer)'s turn", game.StatusMessage())
	})
}

func TestParseModeAndDifficulty(t *testing.T) {
	t.Run("Known values pass", func(t *testing.T) {
		mode, err := ParseMode(ModePvAI)
		require.NoError(t, err)
		assert.Equal(t, ModePvAI, mode)

		difficulty, err := ParseDifficulty(DifficultyHard)
		require.NoError(t, err)
		assert.Equal(t, DifficultyHard, difficulty)
	})

	t.Run("Unknown values are rejected", func(t *testing.T) {
		_, err := ParseMode("online")
		require.ErrorIs(t, err, ErrUnknownMode)

		_, err = ParseDifficulty("insane")
		require.ErrorIs(t, err, ErrUnknownDifficulty)
	})
}

func TestGame_SwitchMode(t *testing.T) {
	t.Run("To the computer", func(t *testing.T) {
		// Given: a pvp game in progress
		game := NewGame("1", ModePvP, DifficultyNormal)
		game.SetPlayerName(PlayerO, "bob")
		game.Board.Set(0, PlayerX)
		game.Turn = PlayerO

		// When: the mode switches to pvai
		game.SwitchMode(ModePvAI)

		// Then: the computer takes O and the game restarts
		assert.True(t, game.IsWithBot())
		assert.Equal(t, "Computer", game.PlayerName(PlayerO))
		assert.Equal(t, Board{}, game.Board)
		assert.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Back to a person", func(t *testing.T) {
		// Given: a pvai game
		game := NewGame("1", ModePvAI, DifficultyNormal)

		// When: the mode switches to pvp
		game.SwitchMode(ModePvP)

		// Then: the computer's name is gone
		assert.False(t, game.IsWithBot())
		assert.Empty(t, game.PlayerName(PlayerO))
	})
}

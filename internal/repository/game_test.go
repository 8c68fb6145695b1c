package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a game with ID and status
	game := entity.NewGame("123", entity.ModePvP, entity.DifficultyNormal)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a game in the middle of play
		game := entity.NewGame("123", entity.ModePvAI, entity.DifficultyHard)
		game.SetPlayerName(entity.PlayerX, "alice")
		game.Board.Set(0, entity.PlayerX)
		game.Board.Set(4, entity.PlayerO)

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_ReturnsSnapshot", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game
		game := entity.NewGame("123", entity.ModePvP, entity.DifficultyNormal)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the retrieved copy is changed without saving
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		retrievedGame.Board.Set(0, entity.PlayerX)

		// Then: the stored game is untouched
		storedGame, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.True(t, storedGame.Board.IsEmpty(0))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
		assert.Empty(t, retrievedGame.ID)
		assert.Empty(t, retrievedGame.Status)
	})

	t.Run("GetByID_CanceledContext", func(t *testing.T) {
		_, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a canceled context
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: GetByID is called
		_, err := gameRepo.GetByID(ctx, "123")

		// Then: the context error comes back
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a finished game
		game := entity.NewGame("123", entity.ModePvP, entity.DifficultyNormal)
		game.Finish(entity.PlayerTie)

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a non-existent game ID
		nonExistentGameID := "9999999"

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		require.Equal(t, ErrGameNotFound, err)
	})
}

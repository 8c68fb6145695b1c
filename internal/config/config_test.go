package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: debug
log-file: game.log
game:
  mode: pvp
  difficulty: hard
  random-seed: 42
players:
  x: alice
  o: bob
`)

		// When: the config is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: every value is taken from the file
		assert.Equal(t, &Config{
			LogLevel: "debug",
			LogFile:  "game.log",
			Game:     Game{Mode: "pvp", Difficulty: "hard", RandomSeed: 42},
			Players:  Players{X: "alice", O: "bob"},
		}, conf)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "log-level: info\n")

		// When: the config is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: defaults fill the gaps
		assert.Equal(t, "tictactoe.log", conf.LogFile)
		assert.Equal(t, "pvai", conf.Game.Mode)
		assert.Equal(t, "normal", conf.Game.Difficulty)
		assert.Zero(t, conf.Game.RandomSeed)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an env override
		path := writeConfig(t, "game:\n  difficulty: easy\n")
		t.Setenv("TICTACTOE_DIFFICULTY", "hard")

		// When: the config is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the env value wins
		assert.Equal(t, "hard", conf.Game.Difficulty)
	})

	t.Run("Missing file", func(t *testing.T) {
		// When: a file that does not exist is loaded
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: an error is returned and MustLoad panics
		require.Error(t, err)
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

package entity

import (
	"errors"
	"fmt"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	ModePvP  = "pvp"
	ModePvAI = "pvai"
)

const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// In a game against the computer the human always plays X and moves first.
const (
	HumanMark = PlayerX
	BotMark   = PlayerO
)

const botName = "Computer"

var (
	ErrUnknownMode       = errors.New("unknown game mode")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

type Game struct {
	ID         string            `json:"id"`
	Board      Board             `json:"board"`
	Turn       string            `json:"player_turn"`
	Winner     string            `json:"winner"`
	Status     string            `json:"status"`
	Mode       string            `json:"mode"`
	Difficulty string            `json:"difficulty,omitempty"`
	Players    map[string]string `json:"players,omitempty"`
}

func NewGame(id, mode, difficulty string) *Game {
	game := &Game{
		ID:         id,
		Mode:       mode,
		Difficulty: difficulty,
		Players:    map[string]string{},
	}
	game.Reset()

	if game.IsWithBot() {
		game.Players[BotMark] = botName
	}

	return game
}

// Reset - starts the game over with an empty board. Mode, difficulty and names are kept.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Turn = PlayerX
	that.Winner = ""
	that.Status = StatusOngoing
}

func (that *Game) IsActive() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModePvAI
}

func (that *Game) IsBotTurn() bool {
	return that.IsWithBot() && that.IsActive() && that.Turn == BotMark
}

// Finish - moves the game into its terminal state. winner is X, O or PlayerTie.
func (that *Game) Finish(winner string) {
	that.Winner = winner
	that.Status = StatusFinished
}

// SwitchMode - changes who plays O and starts a new game.
func (that *Game) SwitchMode(mode string) {
	that.Mode = mode

	switch {
	case that.IsWithBot():
		that.SetPlayerName(BotMark, botName)
	case that.PlayerName(BotMark) == botName:
		delete(that.Players, BotMark)
	}

	that.Reset()
}

func (that *Game) PlayerName(mark string) string {
	return that.Players[mark]
}

func (that *Game) SetPlayerName(mark, name string) {
	if that.Players == nil {
		that.Players = map[string]string{}
	}
	that.Players[mark] = name
}

// StatusMessage - a human readable line describing where the game stands.
func (that *Game) StatusMessage() string {
	switch {
	case that.IsFinished() && that.Winner == PlayerTie:
		return "Game ended in a draw!"
	case that.IsFinished():
		return fmt.Sprintf("Player %s%s has won!", that.Winner, that.nameSuffix(that.Winner))
	default:
		return fmt.Sprintf("Player %s%s's turn", that.Turn, that.nameSuffix(that.Turn))
	}
}

func (that *Game) nameSuffix(mark string) string {
	if name := that.PlayerName(mark); name != "" {
		return " (" + name + ")"
	}
	return ""
}

func ParseMode(mode string) (string, error) {
	switch mode {
	case ModePvP, ModePvAI:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func ParseDifficulty(difficulty string) (string, error) {
	switch difficulty {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
}

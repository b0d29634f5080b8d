// Package games lists the playable games and builds them by name for the
// frontends.
package games

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/plus3/arcade/session"
	"github.com/plus3/arcade/snake"
	"github.com/plus3/arcade/tetris"
)

var ErrUnknownGame = errors.New("games: unknown game")

// Entry describes one game and the surfaces it needs.
type Entry struct {
	Name          string
	Width, Height int
	// Block is the edge length of one grid cell in pixels.
	Block int
	// Preview is the edge length of the next-piece surface, zero when the game
	// has no preview.
	Preview int
	New     func(rng *rand.Rand) (session.Game, error)
}

var (
	snakeConfig  = snake.DefaultConfig()
	tetrisConfig = tetris.DefaultConfig()
)

var entries = []Entry{
	{
		Name:   "snake",
		Width:  snakeConfig.Cols * snakeConfig.BlockSize,
		Height: snakeConfig.Rows * snakeConfig.BlockSize,
		Block:  snakeConfig.BlockSize,
		New: func(rng *rand.Rand) (session.Game, error) {
			return snake.NewGame(snakeConfig, rng)
		},
	},
	{
		Name:    "tetris",
		Width:   tetrisConfig.Cols * tetrisConfig.BlockSize,
		Height:  tetrisConfig.Rows * tetrisConfig.BlockSize,
		Block:   tetrisConfig.BlockSize,
		Preview: 4 * tetrisConfig.BlockSize,
		New: func(rng *rand.Rand) (session.Game, error) {
			return tetris.NewGame(tetrisConfig, rng)
		},
	},
}

// All returns every game in menu order.
func All() []Entry {
	return entries
}

// Names returns the game names in menu order.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Lookup finds a game by name.
func Lookup(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownGame, name)
}

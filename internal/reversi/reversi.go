package reversi

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
)

const Size = 8

type Stone int

const (
	StoneNone Stone = iota
	StoneDark
	StoneLight
)

var ErrCannotPlace = errors.New("cannot place stone on this cell")

// directions - the eight rays checked from a candidate cell.
var directions = [8][2]int{
	{1, 0},
	{-1, 0},
	{0, 1},
	{-1, 1},
	{1, 1},
	{0, -1},
	{-1, -1},
	{1, -1},
}

type Reversi struct {
	Board [Size][Size]Stone
	Turn  Stone
}

// New - creates a board with the four center stones and dark to move.
func New() *Reversi {
	game := &Reversi{Turn: StoneDark}

	game.Board[3][3] = StoneLight
	game.Board[4][4] = StoneLight
	game.Board[3][4] = StoneDark
	game.Board[4][3] = StoneDark

	return game
}

// Opponent - returns the other color. StoneNone has no opponent.
func Opponent(color Stone) Stone {
	switch color {
	case StoneDark:
		return StoneLight
	case StoneLight:
		return StoneDark
	default:
		panic(fmt.Errorf("%w: reversi stone %d has no opponent", apperror.ErrInvariantViolation, color))
	}
}

func (that *Reversi) SwitchTurn() {
	that.Turn = Opponent(that.Turn)
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// flankLength - number of opposing stones captured along one ray, 0 if the ray does not flank.
func (that *Reversi) flankLength(row, col, dRow, dCol int, color Stone) int {
	rival := Opponent(color)

	count := 0
	for r, c := row+dRow, col+dCol; inBounds(r, c); r, c = r+dRow, c+dCol {
		switch that.Board[r][c] {
		case rival:
			count++
		case color:
			return count
		default:
			return 0
		}
	}

	return 0
}

func (that *Reversi) CanPlace(row, col int, color Stone) bool {
	if !inBounds(row, col) || that.Board[row][col] != StoneNone {
		return false
	}

	for _, d := range directions {
		if that.flankLength(row, col, d[0], d[1], color) > 0 {
			return true
		}
	}

	return false
}

// Place - puts a stone and flips every flanked run. Returns the number of flipped stones.
func (that *Reversi) Place(row, col int, color Stone) (int, error) {
	if !that.CanPlace(row, col, color) {
		return 0, fmt.Errorf("%w: row %d column %d", ErrCannotPlace, row, col)
	}

	// all lengths are measured before any stone changes color
	var lengths [len(directions)]int
	for i, d := range directions {
		lengths[i] = that.flankLength(row, col, d[0], d[1], color)
	}

	flipped := 0
	for i, d := range directions {
		for step := 1; step <= lengths[i]; step++ {
			that.Board[row+d[0]*step][col+d[1]*step] = color
			flipped++
		}
	}

	that.Board[row][col] = color

	return flipped, nil
}

func (that *Reversi) PlayerCanPlace(color Stone) bool {
	for row := range Size {
		for col := range Size {
			if that.CanPlace(row, col, color) {
				return true
			}
		}
	}

	return false
}

func (that *Reversi) IsGameEnd() bool {
	return !that.PlayerCanPlace(StoneDark) && !that.PlayerCanPlace(StoneLight)
}

func (that *Reversi) Count() (int, int) {
	dark, light := 0, 0
	for _, line := range that.Board {
		for _, cell := range line {
			switch cell {
			case StoneDark:
				dark++
			case StoneLight:
				light++
			case StoneNone:
			}
		}
	}

	return dark, light
}

// Winner - color with more stones, StoneNone on a draw.
func (that *Reversi) Winner() Stone {
	dark, light := that.Count()

	switch {
	case dark > light:
		return StoneDark
	case light > dark:
		return StoneLight
	default:
		return StoneNone
	}
}

// AdvanceTurn - hands the turn to the opponent, or back to the mover when the opponent has no legal cell.
// Reports whether the opponent was skipped.
func (that *Reversi) AdvanceTurn() bool {
	that.SwitchTurn()

	if that.PlayerCanPlace(that.Turn) {
		return false
	}

	that.SwitchTurn()

	return true
}

package qgomoku

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
)

const (
	Size      = 19
	WinLength = 5
)

var (
	ErrOutOfRange      = errors.New("cell is out of board range")
	ErrAlreadyOccupied = errors.New("cell is already occupied")
)

type (
	Board         [Size][Size]Stone
	ObservedBoard [Size][Size]Observed
)

// Source - a random source yielding uniform values in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64() //nolint: gosec // game randomness, not security
}

// DefaultSource draws from the runtime-seeded generator of math/rand/v2, safe for concurrent use.
var DefaultSource Source = globalSource{}

// lines - horizontal, vertical and both diagonals.
var lines = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

type Gomoku struct {
	Board Board
	Turn  Stone
}

func New() *Gomoku {
	return &Gomoku{Turn: Dark90}
}

func (that *Gomoku) Place(row, col int) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: row %d column %d", ErrOutOfRange, row, col)
	}

	if !that.Board[row][col].IsEmpty() {
		return fmt.Errorf("%w: row %d column %d", ErrAlreadyOccupied, row, col)
	}

	that.Board[row][col] = that.Turn

	return nil
}

// AdvanceTurn - dark-90 -> light-90 -> dark-70 -> light-70 -> dark-90.
func (that *Gomoku) AdvanceTurn() {
	that.Turn = that.Turn.next()
}

// CurrentSide - the side to move. Panics if the turn was left empty.
func (that *Gomoku) CurrentSide() Side {
	if that.Turn.IsEmpty() {
		panic(fmt.Errorf("%w: quantum gomoku turn is empty", apperror.ErrInvariantViolation))
	}

	return that.Turn.Side
}

// Collapse - observes every stone with one independent draw per cell.
func (that *Gomoku) Collapse(rng Source) ObservedBoard {
	var observed ObservedBoard

	for row := range Size {
		for col := range Size {
			stone := that.Board[row][col]
			if stone.IsEmpty() {
				continue
			}

			if rng.Float64() < stone.DarkProbability() {
				observed[row][col] = ObservedDark
			} else {
				observed[row][col] = ObservedLight
			}
		}
	}

	return observed
}

// DecideWinner - a side wins with a connected line; when both sides connect, the side to move wins.
func (that *Gomoku) DecideWinner(observed *ObservedBoard) Observed {
	darkConnected := Connected(observed, ObservedDark)
	lightConnected := Connected(observed, ObservedLight)

	switch {
	case darkConnected && lightConnected:
		return that.CurrentSide().Observed()
	case darkConnected:
		return ObservedDark
	case lightConnected:
		return ObservedLight
	default:
		return ObservedNone
	}
}

// Observe - collapses the board and judges it.
func (that *Gomoku) Observe(rng Source) (Observed, ObservedBoard) {
	observed := that.Collapse(rng)

	return that.DecideWinner(&observed), observed
}

// Connected - reports whether color has WinLength stones in a straight line.
func Connected(observed *ObservedBoard, color Observed) bool {
	if color == ObservedNone {
		return false
	}

	for row := range Size {
		for col := range Size {
			for _, line := range lines {
				window := observed.window(row, col, line[0], line[1])
				if isComplete(window, color) {
					return true
				}
			}
		}
	}

	return false
}

// window - WinLength cells centered on (row, col) along one line; cells off the board are ObservedNone.
func (that *ObservedBoard) window(row, col, dRow, dCol int) [WinLength]Observed {
	var window [WinLength]Observed

	half := WinLength / 2
	for i := range WinLength {
		r := row + dRow*(i-half)
		c := col + dCol*(i-half)

		if inBounds(r, c) {
			window[i] = that[r][c]
		} else {
			window[i] = ObservedNone
		}
	}

	return window
}

func isComplete(window [WinLength]Observed, color Observed) bool {
	for _, stone := range window {
		if stone != color {
			return false
		}
	}

	return true
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

package reversi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
)

func legalCells(game *Reversi, color Stone) [][2]int {
	var cells [][2]int
	for row := range Size {
		for col := range Size {
			if game.CanPlace(row, col, color) {
				cells = append(cells, [2]int{row, col})
			}
		}
	}

	return cells
}

func totalStones(game *Reversi) int {
	dark, light := game.Count()
	return dark + light
}

func TestNew(t *testing.T) {
	// When: a new board is created
	game := New()

	// Then: the four center stones are placed and dark moves first
	assert.Equal(t, StoneLight, game.Board[3][3])
	assert.Equal(t, StoneLight, game.Board[4][4])
	assert.Equal(t, StoneDark, game.Board[3][4])
	assert.Equal(t, StoneDark, game.Board[4][3])
	assert.Equal(t, StoneDark, game.Turn)

	dark, light := game.Count()
	assert.Equal(t, 2, dark)
	assert.Equal(t, 2, light)
}

func TestReversi_CanPlace(t *testing.T) {
	t.Run("Opening position has exactly four legal moves for dark", func(t *testing.T) {
		// Given: the opening position
		game := New()

		// When: collecting every legal cell for dark
		cells := legalCells(game, StoneDark)

		// Then: only the four classic openings are legal
		assert.ElementsMatch(t, [][2]int{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, cells)
	})

	t.Run("Occupied cell is never legal", func(t *testing.T) {
		// Given: the opening position
		game := New()

		// Then: a center cell cannot be taken
		assert.False(t, game.CanPlace(3, 3, StoneDark))
	})

	t.Run("Out of range cell is never legal", func(t *testing.T) {
		// Given: the opening position
		game := New()

		// Then: coordinates outside the board are rejected
		assert.False(t, game.CanPlace(-1, 0, StoneDark))
		assert.False(t, game.CanPlace(0, Size, StoneDark))
	})

	t.Run("Run interrupted by an empty cell does not flank", func(t *testing.T) {
		// Given: dark, light, empty, dark on one row
		game := &Reversi{Turn: StoneDark}
		game.Board[0][1] = StoneLight
		game.Board[0][3] = StoneDark

		// Then: placing at the row start captures nothing
		assert.False(t, game.CanPlace(0, 0, StoneDark))
	})

	t.Run("Ray ending at the board edge does not flank", func(t *testing.T) {
		// Given: a light run reaching the edge
		game := &Reversi{Turn: StoneDark}
		game.Board[0][6] = StoneLight
		game.Board[0][7] = StoneLight

		// Then: no dark stone closes the run
		assert.False(t, game.CanPlace(0, 5, StoneDark))
	})
}

func TestReversi_Place(t *testing.T) {
	t.Run("Capture from the opening", func(t *testing.T) {
		// Given: the opening position
		game := New()

		// When: dark places above the light center stone
		flipped, err := game.Place(2, 3, StoneDark)
		require.NoError(t, err)

		// Then: one light stone is flipped and the board holds five stones
		assert.Equal(t, 1, flipped)
		assert.Equal(t, StoneDark, game.Board[2][3])
		assert.Equal(t, StoneDark, game.Board[3][3])
		assert.Equal(t, 5, totalStones(game))

		dark, light := game.Count()
		assert.Equal(t, 4, dark)
		assert.Equal(t, 1, light)
	})

	t.Run("Stone count grows by one plus flipped", func(t *testing.T) {
		// Given: a short sequence of legal moves
		game := New()

		for i := 0; i < 6 && !game.IsGameEnd(); i++ {
			cells := legalCells(game, game.Turn)
			require.NotEmpty(t, cells)

			darkBefore, lightBefore := game.Count()
			moverBefore := darkBefore
			if game.Turn == StoneLight {
				moverBefore = lightBefore
			}

			// When: the mover takes the first legal cell
			flipped, err := game.Place(cells[0][0], cells[0][1], game.Turn)
			require.NoError(t, err)

			// Then: the total grows by exactly one and the mover gains 1+flipped
			darkAfter, lightAfter := game.Count()
			moverAfter := darkAfter
			if game.Turn == StoneLight {
				moverAfter = lightAfter
			}

			assert.Equal(t, darkBefore+lightBefore+1, darkAfter+lightAfter)
			assert.Equal(t, moverBefore+1+flipped, moverAfter)

			game.AdvanceTurn()
		}
	})

	t.Run("Flips in several directions at once", func(t *testing.T) {
		// Given: light stones flanked both horizontally and vertically
		game := &Reversi{Turn: StoneDark}
		game.Board[0][1] = StoneLight
		game.Board[0][2] = StoneDark
		game.Board[1][0] = StoneLight
		game.Board[2][0] = StoneLight
		game.Board[3][0] = StoneDark

		// When: dark takes the corner
		flipped, err := game.Place(0, 0, StoneDark)
		require.NoError(t, err)

		// Then: all three light stones are flipped
		assert.Equal(t, 3, flipped)
		assert.Equal(t, StoneDark, game.Board[0][1])
		assert.Equal(t, StoneDark, game.Board[1][0])
		assert.Equal(t, StoneDark, game.Board[2][0])
	})

	t.Run("Illegal placement leaves the board untouched", func(t *testing.T) {
		// Given: the opening position
		game := New()
		before := game.Board

		// When: dark tries a cell with no capture
		_, err := game.Place(0, 0, StoneDark)

		// Then: ErrCannotPlace is returned and nothing changed
		require.ErrorIs(t, err, ErrCannotPlace)
		assert.Equal(t, before, game.Board)
	})
}

func TestReversi_IsGameEnd(t *testing.T) {
	t.Run("Opening position is not the end", func(t *testing.T) {
		game := New()

		assert.False(t, game.IsGameEnd())
		assert.True(t, game.PlayerCanPlace(StoneDark))
		assert.True(t, game.PlayerCanPlace(StoneLight))
	})

	t.Run("Full board ends the game", func(t *testing.T) {
		// Given: a board without empty cells
		game := &Reversi{Turn: StoneDark}
		for row := range Size {
			for col := range Size {
				game.Board[row][col] = StoneDark
				if (row+col)%3 == 0 {
					game.Board[row][col] = StoneLight
				}
			}
		}

		// Then: nobody can place and the game is over
		assert.False(t, game.PlayerCanPlace(StoneDark))
		assert.False(t, game.PlayerCanPlace(StoneLight))
		assert.True(t, game.IsGameEnd())
	})

	t.Run("Early double block ends the game", func(t *testing.T) {
		// Given: only dark stones remain on a mostly empty board
		game := &Reversi{Turn: StoneLight}
		game.Board[3][3] = StoneDark
		game.Board[3][4] = StoneDark

		// Then: neither color has a capture and the game is over
		assert.False(t, game.PlayerCanPlace(StoneDark))
		assert.False(t, game.PlayerCanPlace(StoneLight))
		assert.True(t, game.IsGameEnd())
	})

	t.Run("One blocked color is not the end", func(t *testing.T) {
		// Given: dark can capture but light cannot
		game := &Reversi{Turn: StoneDark}
		game.Board[0][0] = StoneDark
		game.Board[0][1] = StoneLight

		// Then: the game continues
		assert.True(t, game.PlayerCanPlace(StoneDark))
		assert.False(t, game.PlayerCanPlace(StoneLight))
		assert.False(t, game.IsGameEnd())
	})
}

func TestReversi_AdvanceTurn(t *testing.T) {
	t.Run("Turn passes to the opponent", func(t *testing.T) {
		game := New()

		skipped := game.AdvanceTurn()

		assert.False(t, skipped)
		assert.Equal(t, StoneLight, game.Turn)
	})

	t.Run("Blocked opponent is skipped once", func(t *testing.T) {
		// Given: light has no legal cell
		game := &Reversi{Turn: StoneDark}
		game.Board[0][0] = StoneDark
		game.Board[0][1] = StoneLight

		// When: the turn advances
		skipped := game.AdvanceTurn()

		// Then: dark moves again
		assert.True(t, skipped)
		assert.Equal(t, StoneDark, game.Turn)
	})
}

func TestReversi_Winner(t *testing.T) {
	game := &Reversi{}
	game.Board[0][0] = StoneLight
	game.Board[0][1] = StoneLight
	game.Board[0][2] = StoneDark
	assert.Equal(t, StoneLight, game.Winner())

	game.Board[0][3] = StoneDark
	assert.Equal(t, StoneNone, game.Winner())
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, StoneLight, Opponent(StoneDark))
	assert.Equal(t, StoneDark, Opponent(StoneLight))

	assert.PanicsWithError(t, apperror.ErrInvariantViolation.Error()+": reversi stone 0 has no opponent", func() {
		Opponent(StoneNone)
	})
}

func TestReversi_Render(t *testing.T) {
	// Given: the opening position
	game := New()

	// When: the board is rendered
	board := game.Render()

	// Then: there are four placeable markers and a header plus eight rows
	assert.Equal(t, 4, strings.Count(board, glyphPlaceable))
	assert.Equal(t, 2, strings.Count(board, glyphDark))
	assert.Equal(t, 2, strings.Count(board, glyphLight))
	assert.Equal(t, Size+1, strings.Count(board, "\n"))
}

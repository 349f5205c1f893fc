package qgomoku

import (
	"fmt"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
)

type Side int

const (
	SideNone Side = iota
	SideDark
	SideLight
)

type Weight int

const (
	Weight90 Weight = iota
	Weight70
)

// Stone - a quantum stone: which side placed it and how strongly it leans to that side.
// The zero value is an empty cell.
type Stone struct {
	Side   Side
	Weight Weight
}

var (
	Dark90  = Stone{Side: SideDark, Weight: Weight90}
	Dark70  = Stone{Side: SideDark, Weight: Weight70}
	Light90 = Stone{Side: SideLight, Weight: Weight90}
	Light70 = Stone{Side: SideLight, Weight: Weight70}
	Empty   = Stone{}
)

func (that Stone) IsEmpty() bool {
	return that.Side == SideNone
}

// Percent - probability in percent that the stone shows its own side when observed.
func (that Weight) Percent() int {
	if that == Weight70 {
		return 70
	}

	return 90
}

func (that Side) Opposite() Side {
	switch that {
	case SideDark:
		return SideLight
	case SideLight:
		return SideDark
	default:
		panic(fmt.Errorf("%w: quantum side %d has no opposite", apperror.ErrInvariantViolation, that))
	}
}

// DarkProbability - chance that the stone collapses to dark.
func (that Stone) DarkProbability() float64 {
	percent := that.Weight.Percent()

	switch that.Side {
	case SideDark:
	case SideLight:
		percent = 100 - percent
	default:
		panic(fmt.Errorf("%w: empty cell has no collapse probability", apperror.ErrInvariantViolation))
	}

	return float64(percent) / 100
}

// next - the turn after this one: the side alternates and the weight changes after light moves.
func (that Stone) next() Stone {
	weight := that.Weight
	if that.Side == SideLight {
		weight = nextWeight(weight)
	}

	return Stone{Side: that.Side.Opposite(), Weight: weight}
}

func nextWeight(weight Weight) Weight {
	if weight == Weight90 {
		return Weight70
	}

	return Weight90
}

func (that Stone) String() string {
	switch that.Side {
	case SideDark:
		return fmt.Sprintf("dark-%d", that.Weight.Percent())
	case SideLight:
		return fmt.Sprintf("light-%d", that.Weight.Percent())
	default:
		return "empty"
	}
}

type Observed int

const (
	ObservedNone Observed = iota
	ObservedDark
	ObservedLight
)

func (that Side) Observed() Observed {
	switch that {
	case SideDark:
		return ObservedDark
	case SideLight:
		return ObservedLight
	default:
		panic(fmt.Errorf("%w: quantum side %d cannot be observed", apperror.ErrInvariantViolation, that))
	}
}

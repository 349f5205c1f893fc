package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
	"github.com/rocketscienceinc/boardgame-bot/internal/qgomoku"
	"github.com/rocketscienceinc/boardgame-bot/internal/reversi"
)

type GameKind string

const (
	KindReversi       GameKind = "reversi"
	KindQuantumGomoku GameKind = "quantum_gomoku"
)

var ErrUnknownGameKind = errors.New("unknown game kind")

// Match is the whole state of one game in one channel. Exactly one of Reversi and Gomoku is set.
type Match struct {
	ID        string           `json:"id"`
	ChannelID uint64           `json:"channel_id"`
	Kind      GameKind         `json:"kind"`
	Reversi   *reversi.Reversi `json:"reversi,omitempty"`
	Gomoku    *qgomoku.Gomoku  `json:"gomoku,omitempty"`
	Dark      *Participant     `json:"dark"`
	Light     *Participant     `json:"light"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewMatch(kind GameKind, channelID, darkID, lightID uint64) (*Match, error) {
	match := &Match{
		ID:        uuid.NewString(),
		ChannelID: channelID,
		Kind:      kind,
		Dark:      NewParticipant(darkID),
		Light:     NewParticipant(lightID),
		CreatedAt: time.Now(),
	}

	switch kind {
	case KindReversi:
		match.Reversi = reversi.New()
	case KindQuantumGomoku:
		match.Gomoku = qgomoku.New()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGameKind, kind)
	}

	return match, nil
}

// MoverIsDark - whether the dark participant is entitled to act.
func (that *Match) MoverIsDark() bool {
	switch that.Kind {
	case KindReversi:
		switch that.Reversi.Turn {
		case reversi.StoneDark:
			return true
		case reversi.StoneLight:
			return false
		case reversi.StoneNone:
		}

		panic(fmt.Errorf("%w: reversi turn is empty in match %s", apperror.ErrInvariantViolation, that.ID))
	case KindQuantumGomoku:
		return that.Gomoku.CurrentSide() == qgomoku.SideDark
	default:
		panic(fmt.Errorf("%w: match %s has unknown kind %q", apperror.ErrInvariantViolation, that.ID, that.Kind))
	}
}

func (that *Match) Mover() *Participant {
	if that.MoverIsDark() {
		return that.Dark
	}

	return that.Light
}

func (that *Match) Waiting() *Participant {
	if that.MoverIsDark() {
		return that.Light
	}

	return that.Dark
}

func (that *Match) IsMover(participantID uint64) bool {
	return that.Mover().ID == participantID
}

func (that *Match) HasParticipant(participantID uint64) bool {
	return that.Dark.ID == participantID || that.Light.ID == participantID
}

// Clone - deep copy safe to read without holding the store lock.
func (that *Match) Clone() *Match {
	clone := *that

	if that.Reversi != nil {
		board := *that.Reversi
		clone.Reversi = &board
	}

	if that.Gomoku != nil {
		board := *that.Gomoku
		clone.Gomoku = &board
	}

	dark, light := *that.Dark, *that.Light
	clone.Dark, clone.Light = &dark, &light

	return &clone
}

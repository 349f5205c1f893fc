package usecase

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
	"github.com/rocketscienceinc/boardgame-bot/internal/entity"
	"github.com/rocketscienceinc/boardgame-bot/internal/render"
	"github.com/rocketscienceinc/boardgame-bot/internal/reversi"
)

const (
	boardImageName    = "board.png"
	observedImageName = "observed.png"
)

const (
	quantumRules    = "> Rules: every stone is only likely to be its color. Observing collapses each one to dark or light.\n"
	noticeSkipped   = "No placeable cell, the same player moves again.\n"
	noticeNoWinner  = "Observed: nobody has five in a row.\n"
	messageFinished = "The match is over."
	messageEnded    = "The match has been ended."
)

type labels []string

func (that labels) index(label string) (int, error) {
	for i, candidate := range that {
		if candidate == label {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidLabel, label)
}

// axes - row labels are letters, column labels are numbers, both map to zero-based indexes.
type axes struct {
	rows    labels
	columns labels
}

var (
	reversiAxes = axes{rows: letters(reversi.Size), columns: numbers(reversi.Size)}
	quantumAxes = axes{rows: letters(render.PlayableSize), columns: numbers(render.PlayableSize)}
)

func letters(count int) labels {
	out := make(labels, count)
	for i := range count {
		out[i] = string(rune('A' + i))
	}

	return out
}

func numbers(count int) labels {
	out := make(labels, count)
	for i := range count {
		out[i] = strconv.Itoa(i + 1)
	}

	return out
}

func axesFor(kind entity.GameKind) axes {
	if kind == entity.KindQuantumGomoku {
		return quantumAxes
	}

	return reversiAxes
}

func (that axes) resolve(selection entity.Selection) (int, int, error) {
	if !selection.IsComplete() {
		return 0, 0, apperror.ErrIncompleteSelection
	}

	row, err := that.rows.index(selection.Row)
	if err != nil {
		return 0, 0, err
	}

	col, err := that.columns.index(selection.Column)
	if err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

type ControlKind int

const (
	ControlPicker ControlKind = iota + 1
	ControlButton
)

// Control describes one input the channel should offer next to the board.
type Control struct {
	Kind    ControlKind
	Action  ActionKind
	Game    entity.GameKind
	Caption string
	Options []string
}

func controlsFor(kind entity.GameKind) []Control {
	board := axesFor(kind)

	controls := []Control{
		{Kind: ControlPicker, Action: ActionSelectRow, Game: kind, Caption: "Choose a row", Options: board.rows},
		{Kind: ControlPicker, Action: ActionSelectColumn, Game: kind, Caption: "Choose a column", Options: board.columns},
		{Kind: ControlButton, Action: ActionCommit, Game: kind, Caption: "Place"},
	}

	if kind == entity.KindQuantumGomoku {
		controls = append(controls, Control{Kind: ControlButton, Action: ActionCommitAndObserve, Game: kind, Caption: "Place and observe"})
	}

	return controls
}

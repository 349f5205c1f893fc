package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
	"github.com/rocketscienceinc/boardgame-bot/internal/entity"
	"github.com/rocketscienceinc/boardgame-bot/internal/metrics"
	"github.com/rocketscienceinc/boardgame-bot/internal/qgomoku"
	"github.com/rocketscienceinc/boardgame-bot/internal/render"
	"github.com/rocketscienceinc/boardgame-bot/internal/repository"
	"github.com/rocketscienceinc/boardgame-bot/internal/reversi"
)

type ActionKind int

const (
	ActionStartMatch ActionKind = iota + 1
	ActionEndMatch
	ActionSelectRow
	ActionSelectColumn
	ActionCommit
	ActionCommitAndObserve
)

func (that ActionKind) String() string {
	switch that {
	case ActionStartMatch:
		return "start_match"
	case ActionEndMatch:
		return "end_match"
	case ActionSelectRow:
		return "select_row"
	case ActionSelectColumn:
		return "select_column"
	case ActionCommit:
		return "commit"
	case ActionCommitAndObserve:
		return "commit_and_observe"
	default:
		return fmt.Sprintf("action(%d)", int(that))
	}
}

// Action is one inbound request. Game names the game the command or control belongs to;
// empty means any game in the channel.
type Action struct {
	Kind      ActionKind
	Game      entity.GameKind
	ChannelID uint64
	ActorID   uint64

	OpponentID    uint64
	OpponentIsBot bool

	Label string
}

type Image struct {
	Name string
	PNG  []byte
}

// Result is what the channel should show after an action. An empty Message means acknowledge only.
type Result struct {
	Message  string
	Board    string
	Images   []Image
	Controls []Control
	Finished bool
}

type matchRepo interface {
	Create(kind entity.GameKind, channelID, darkID, lightID uint64) (*entity.Match, error)
	GetByChannelID(channelID uint64) (*entity.Match, error)
	Update(channelID uint64, fn repository.Mutation) error
}

type nameResolver interface {
	Name(ctx context.Context, userID uint64) string
}

type Arbiter struct {
	logger *slog.Logger

	matches matchRepo
	names   nameResolver
	rng     qgomoku.Source

	clearSelection bool
}

func NewArbiter(logger *slog.Logger, matches matchRepo, names nameResolver, rng qgomoku.Source, clearSelection bool) *Arbiter {
	return &Arbiter{
		logger: logger.With("component", "arbiter"),

		matches: matches,
		names:   names,
		rng:     rng,

		clearSelection: clearSelection,
	}
}

// Handle runs one action against the channel's match. Rejections come back as apperror sentinels.
func (that *Arbiter) Handle(ctx context.Context, action Action) (*Result, error) {
	log := that.logger.With("method", "Handle", "action", action.Kind.String(), "channelID", action.ChannelID, "actorID", action.ActorID)

	var (
		result *Result
		err    error
	)

	switch action.Kind {
	case ActionStartMatch:
		result, err = that.startMatch(ctx, action)
	case ActionEndMatch:
		result, err = that.endMatch(action)
	case ActionSelectRow, ActionSelectColumn:
		result, err = that.selectLabel(action)
	case ActionCommit, ActionCommitAndObserve:
		result, err = that.commit(ctx, action)
	default:
		err = fmt.Errorf("%w: %s", apperror.ErrUnknownAction, action.Kind)
	}

	if err != nil {
		metrics.Rejections.WithLabelValues(rejectionReason(err)).Inc()
		log.Debug("action rejected", "error", err)

		return nil, err
	}

	return result, nil
}

// Match - a snapshot of the channel's match.
func (that *Arbiter) Match(channelID uint64) (*entity.Match, error) {
	match, err := that.matches.GetByChannelID(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

func (that *Arbiter) startMatch(ctx context.Context, action Action) (*Result, error) {
	log := that.logger.With("method", "startMatch")

	if action.OpponentIsBot || action.OpponentID == 0 || action.OpponentID == action.ActorID {
		return nil, fmt.Errorf("%w: user %d", apperror.ErrInvalidOpponent, action.OpponentID)
	}

	match, err := that.matches.Create(action.Game, action.ChannelID, action.ActorID, action.OpponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	metrics.MatchesStarted.WithLabelValues(string(match.Kind)).Inc()
	metrics.ActiveMatches.Inc()

	log.Info("match started", "matchID", match.ID, "game", match.Kind, "darkID", match.Dark.ID, "lightID", match.Light.ID)

	notice := ""
	if match.Kind == entity.KindQuantumGomoku {
		notice = quantumRules
	}

	return that.ongoing(ctx, match, notice)
}

func (that *Arbiter) endMatch(action Action) (*Result, error) {
	log := that.logger.With("method", "endMatch")

	var kind entity.GameKind

	err := that.matches.Update(action.ChannelID, func(match *entity.Match) (bool, error) {
		if action.Game != "" && match.Kind != action.Game {
			return false, fmt.Errorf("%w: %s match in channel %d", apperror.ErrWrongGame, match.Kind, match.ChannelID)
		}

		kind = match.Kind

		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to end match: %w", err)
	}

	metrics.MatchesFinished.WithLabelValues(string(kind), "ended").Inc()
	metrics.ActiveMatches.Dec()

	log.Info("match ended", "game", kind, "channelID", action.ChannelID, "actorID", action.ActorID)

	return &Result{Message: messageEnded, Finished: true}, nil
}

func (that *Arbiter) selectLabel(action Action) (*Result, error) {
	err := that.matches.Update(action.ChannelID, func(match *entity.Match) (bool, error) {
		mover, err := authorize(match, action)
		if err != nil {
			return false, err
		}

		board := axesFor(match.Kind)

		if action.Kind == ActionSelectRow {
			if _, err = board.rows.index(action.Label); err != nil {
				return false, err
			}

			mover.Selection.Row = action.Label
		} else {
			if _, err = board.columns.index(action.Label); err != nil {
				return false, err
			}

			mover.Selection.Column = action.Label
		}

		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", action.Kind, err)
	}

	return &Result{}, nil
}

// placement is what a commit leaves behind, captured inside the store lock.
type placement struct {
	match    *entity.Match
	finished bool
	skipped  bool
	winner   qgomoku.Observed
	observed *qgomoku.ObservedBoard
}

// commit validates ownership, resolves the selection, places and advances the turn in one critical section.
func (that *Arbiter) commit(ctx context.Context, action Action) (*Result, error) {
	log := that.logger.With("method", "commit")

	var outcome placement

	err := that.matches.Update(action.ChannelID, func(match *entity.Match) (bool, error) {
		if action.Kind == ActionCommitAndObserve && match.Kind != entity.KindQuantumGomoku {
			return false, fmt.Errorf("%w: %s match cannot be observed", apperror.ErrWrongGame, match.Kind)
		}

		mover, err := authorize(match, action)
		if err != nil {
			return false, err
		}

		row, col, err := axesFor(match.Kind).resolve(mover.Selection)
		if err != nil {
			return false, err
		}

		switch match.Kind {
		case entity.KindReversi:
			err = that.placeReversi(match, row, col, &outcome)
		case entity.KindQuantumGomoku:
			err = that.placeQuantum(match, row, col, action.Kind == ActionCommitAndObserve, &outcome)
		default:
			panic(fmt.Errorf("%w: match %s has unknown kind %q", apperror.ErrInvariantViolation, match.ID, match.Kind))
		}

		if err != nil {
			return false, fmt.Errorf("%w: %s%s", apperror.ErrIllegalPlacement, mover.Selection.Row, mover.Selection.Column)
		}

		if that.clearSelection {
			mover.ClearSelection()
		}

		outcome.match = match.Clone()

		return outcome.finished, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	match := outcome.match
	metrics.Placements.WithLabelValues(string(match.Kind)).Inc()

	if !outcome.finished {
		return that.afterPlacement(ctx, match, outcome)
	}

	metrics.ActiveMatches.Dec()
	log.Info("match finished", "matchID", match.ID, "game", match.Kind)

	if match.Kind == entity.KindReversi {
		return that.reversiTally(ctx, match), nil
	}

	return that.quantumVerdict(ctx, match, outcome)
}

func (that *Arbiter) placeReversi(match *entity.Match, row, col int, outcome *placement) error {
	game := match.Reversi

	if _, err := game.Place(row, col, game.Turn); err != nil {
		return err
	}

	if game.IsGameEnd() {
		outcome.finished = true
		return nil
	}

	outcome.skipped = game.AdvanceTurn()

	return nil
}

func (that *Arbiter) placeQuantum(match *entity.Match, row, col int, observe bool, outcome *placement) error {
	game := match.Gomoku

	if err := game.Place(row, col); err != nil {
		return err
	}

	if observe {
		// the mover wins ties, so the turn must not advance before the verdict
		winner, observed := game.Observe(that.rng)

		outcome.winner = winner
		outcome.observed = &observed
		outcome.finished = winner != qgomoku.ObservedNone

		if outcome.finished {
			return nil
		}
	}

	game.AdvanceTurn()

	return nil
}

func (that *Arbiter) afterPlacement(ctx context.Context, match *entity.Match, outcome placement) (*Result, error) {
	notice := ""
	if outcome.skipped {
		notice = noticeSkipped
	}

	if outcome.observed != nil {
		notice = noticeNoWinner
	}

	result, err := that.ongoing(ctx, match, notice)
	if err != nil {
		return nil, err
	}

	if outcome.observed != nil {
		observed, err := render.ObservedBoard(outcome.observed)
		if err != nil {
			return nil, fmt.Errorf("failed to render observed board: %w", err)
		}

		result.Images = append(result.Images, Image{Name: observedImageName, PNG: observed})
	}

	return result, nil
}

// ongoing describes a match that is still running: whose turn it is, the board and the controls.
func (that *Arbiter) ongoing(ctx context.Context, match *entity.Match, notice string) (*Result, error) {
	result := &Result{
		Message:  notice + that.turnInfo(ctx, match),
		Controls: controlsFor(match.Kind),
	}

	switch match.Kind {
	case entity.KindReversi:
		result.Board = match.Reversi.Render()
	case entity.KindQuantumGomoku:
		board, err := render.QuantumBoard(&match.Gomoku.Board)
		if err != nil {
			return nil, fmt.Errorf("failed to render board: %w", err)
		}

		result.Images = []Image{{Name: boardImageName, PNG: board}}
	}

	return result, nil
}

func (that *Arbiter) reversiTally(ctx context.Context, match *entity.Match) *Result {
	game := match.Reversi
	dark, light := game.Count()

	var winner string
	switch game.Winner() {
	case reversi.StoneDark:
		winner = "Dark: " + that.names.Name(ctx, match.Dark.ID)
	case reversi.StoneLight:
		winner = "Light: " + that.names.Name(ctx, match.Light.ID)
	case reversi.StoneNone:
		winner = "Draw"
	}

	metrics.MatchesFinished.WithLabelValues(string(match.Kind), outcomeLabel(game.Winner() == reversi.StoneDark, game.Winner() == reversi.StoneNone)).Inc()

	return &Result{
		Message:  fmt.Sprintf("%s\nDark: %d\nLight: %d\nWinner: %s", messageFinished, dark, light, winner),
		Board:    game.Render(),
		Finished: true,
	}
}

func (that *Arbiter) quantumVerdict(ctx context.Context, match *entity.Match, outcome placement) (*Result, error) {
	winnerIsDark := outcome.winner == qgomoku.ObservedDark

	winnerID := match.Light.ID
	if winnerIsDark {
		winnerID = match.Dark.ID
	}

	metrics.MatchesFinished.WithLabelValues(string(match.Kind), outcomeLabel(winnerIsDark, false)).Inc()

	observed, err := render.ObservedBoard(outcome.observed)
	if err != nil {
		return nil, fmt.Errorf("failed to render observed board: %w", err)
	}

	return &Result{
		Message:  fmt.Sprintf("%s\nWinner: %s : %s", messageFinished, sideGlyph(winnerIsDark), that.names.Name(ctx, winnerID)),
		Images:   []Image{{Name: observedImageName, PNG: observed}},
		Finished: true,
	}, nil
}

func (that *Arbiter) turnInfo(ctx context.Context, match *entity.Match) string {
	moverIsDark := match.MoverIsDark()
	line := fmt.Sprintf("Now %s : %s to move.", sideGlyph(moverIsDark), that.names.Name(ctx, match.Mover().ID))

	if match.Kind != entity.KindQuantumGomoku {
		return line
	}

	own := match.Gomoku.Turn.Weight.Percent()
	if moverIsDark {
		return fmt.Sprintf("%s\nStone: %d%% dark - %d%% light", line, own, 100-own)
	}

	return fmt.Sprintf("%s\nStone: %d%% light - %d%% dark", line, own, 100-own)
}

// authorize - the mover's participant, if the action belongs to this match and comes from the mover.
func authorize(match *entity.Match, action Action) (*entity.Participant, error) {
	if action.Game != "" && action.Game != match.Kind {
		return nil, fmt.Errorf("%w: %s match in channel %d", apperror.ErrWrongGame, match.Kind, match.ChannelID)
	}

	mover := match.Mover()
	if mover.ID != action.ActorID {
		return nil, fmt.Errorf("%w: user %d", apperror.ErrNotYourTurn, action.ActorID)
	}

	return mover, nil
}

func sideGlyph(dark bool) string {
	if dark {
		return reversi.Glyph(reversi.StoneDark)
	}

	return reversi.Glyph(reversi.StoneLight)
}

func outcomeLabel(darkWon, draw bool) string {
	switch {
	case draw:
		return "draw"
	case darkWon:
		return "dark"
	default:
		return "light"
	}
}

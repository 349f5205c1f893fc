package apperror

import "errors"

var (
	ErrNoActiveMatch       = errors.New("no active match in this channel")
	ErrMatchAlreadyActive  = errors.New("match is already active in this channel")
	ErrInvalidOpponent     = errors.New("invalid opponent")
	ErrNotYourTurn         = errors.New("it's not your turn")
	ErrIncompleteSelection = errors.New("row and column must be selected")
	ErrIllegalPlacement    = errors.New("stone cannot be placed on this cell")
	ErrInvalidLabel        = errors.New("unknown axis label")
	ErrWrongGame           = errors.New("action does not belong to the game in this channel")
	ErrUnknownAction       = errors.New("unknown action")

	// ErrInvariantViolation is never returned; engines panic with it when a turn reaches an impossible state.
	ErrInvariantViolation = errors.New("invariant violation")
)

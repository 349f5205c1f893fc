package usecase

import (
	"errors"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
)

// NoticeInternal is shown for failures that are not the user's doing.
const NoticeInternal = "Something went wrong, please try again."

var rejections = []struct {
	err    error
	reason string
	notice string
}{
	{apperror.ErrNoActiveMatch, "no_active_match", "There is no match in this channel."},
	{apperror.ErrMatchAlreadyActive, "match_already_active", "A match is already in progress in this channel."},
	{apperror.ErrInvalidOpponent, "invalid_opponent", "That user cannot be chosen as an opponent."},
	{apperror.ErrNotYourTurn, "not_your_turn", "It is not your turn."},
	{apperror.ErrIncompleteSelection, "incomplete_selection", "Choose a row and a column first."},
	{apperror.ErrIllegalPlacement, "illegal_placement", "A stone cannot be placed on that cell."},
	{apperror.ErrInvalidLabel, "invalid_label", "That row or column does not exist."},
	{apperror.ErrWrongGame, "wrong_game", "That belongs to a different game."},
	{apperror.ErrUnknownAction, "unknown_action", "Not implemented."},
}

// RejectionNotice - the user-facing text for an error from Handle. ok is false for internal failures.
func RejectionNotice(err error) (string, bool) {
	for _, rejection := range rejections {
		if errors.Is(err, rejection.err) {
			return rejection.notice, true
		}
	}

	return NoticeInternal, false
}

func rejectionReason(err error) string {
	for _, rejection := range rejections {
		if errors.Is(err, rejection.err) {
			return rejection.reason
		}
	}

	return "internal"
}

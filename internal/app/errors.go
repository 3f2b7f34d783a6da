package app

import "errors"

// Rejections returned by match commands. None of them mutate match state.
var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrTooWeak         = errors.New("play does not beat the table")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrAlreadyPassed   = errors.New("already passed this round")
	ErrMatchNotReady   = errors.New("match not ready to start")
	ErrSeatUnavailable = errors.New("seat unavailable")
	ErrUnknownPlayer   = errors.New("player not found")
	ErrNotPlaying      = errors.New("match not in playing phase")
	ErrUnknownMatch    = errors.New("match not found")
)

// RejectReason maps a command error to the short code sent to the acting player.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, ErrIllegalMove):
		return "illegal_move"
	case errors.Is(err, ErrTooWeak):
		return "too_weak"
	case errors.Is(err, ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, ErrAlreadyPassed):
		return "already_passed"
	case errors.Is(err, ErrMatchNotReady):
		return "match_not_ready"
	case errors.Is(err, ErrSeatUnavailable):
		return "seat_unavailable"
	case errors.Is(err, ErrUnknownPlayer):
		return "unknown_player"
	case errors.Is(err, ErrNotPlaying):
		return "not_playing"
	case errors.Is(err, ErrUnknownMatch):
		return "unknown_match"
	}
	return "rejected"
}

package game

import "errors"

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrPlayerNotActive   = errors.New("player cannot act")
	ErrRoundComplete     = errors.New("betting round already complete")
	ErrRoundNotComplete  = errors.New("betting round not complete")
	ErrFinalRound        = errors.New("already at final betting round")
	ErrRaiseTooSmall     = errors.New("raise below minimum")
	ErrInsufficientChips = errors.New("insufficient chips")
	ErrNoWinners         = errors.New("no winners selected")
	ErrBadDistribution   = errors.New("distribution does not match pot")
	ErrPotNotDistributed = errors.New("pot has not been distributed")
	ErrNotEnoughPlayers  = errors.New("not enough funded players")
	ErrUnknownAction     = errors.New("unknown action")
)

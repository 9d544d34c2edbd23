package engine

import "errors"

// Tournament engine errors
var (
	// Registration errors
	ErrRegistrationClosed = errors.New("registration closed: the tournament has already started")
	ErrDuplicatePlayer    = errors.New("player already registered in this tournament")
	ErrDuplicateIDs       = errors.New("duplicate player ids detected in the roster")

	// Round lifecycle errors
	ErrRosterTooSmall = errors.New("at least 8 players are required to start a tournament")
	ErrAlreadyStarted = errors.New("tournament has already started")
	ErrNotStarted     = errors.New("tournament has not started yet: launch the first round first")
	ErrNoMoreRounds   = errors.New("maximum number of rounds reached")

	// Tiebreak errors
	ErrNoTie = errors.New("no tiebreak needed: fewer than two tied leaders")
)

// MinRosterSize is the smallest roster allowed to launch a tournament.
const MinRosterSize = 8

// DefaultNumberRounds is the scheduled round count when none is given.
const DefaultNumberRounds = 4

package scheduledb

import "errors"

var (
	// ErrLeagueNotFound is returned when no season config exists for a league.
	ErrLeagueNotFound = errors.New("league not found")

	// ErrNoSchedule is returned when a league has no stored rounds.
	ErrNoSchedule = errors.New("no schedule stored for league")
)

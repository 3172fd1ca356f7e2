package handicapdb

import "errors"

var (
	// ErrLeagueNotFound is returned when no settings record exists for a league.
	ErrLeagueNotFound = errors.New("league not found")

	// ErrTeamNotFound is returned when a team has no registration in the league.
	ErrTeamNotFound = errors.New("team not found")
)

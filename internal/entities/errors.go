// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnrecognizedEvent signals a timeline event whose type discriminator
	// is not in the known set. Schema-compatibility failure, never dropped.
	ErrUnrecognizedEvent = errors.New("unrecognized event type")
	// ErrMalformedTimestamp signals a timestamp that failed to parse.
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	// ErrTeamsNotConfigured signals a missing or unmatched reviewer-team
	// mapping for a repository.
	ErrTeamsNotConfigured = errors.New("reviewer teams not configured")
)

// TeamConfigError reports a reviewer-team mapping that is absent from the
// settings file or does not match any team on the organization. It carries
// the team names actually found so the operator can fix the mapping.
type TeamConfigError struct {
	Organization   string
	Repository     string
	AvailableTeams []string
}

func (e *TeamConfigError) Error() string {
	return fmt.Sprintf(
		"reviewer teams for %s/%s have not been entered in settings, or did not match teams on the organization; teams on [%s]: %s",
		e.Organization, e.Repository, e.Organization, strings.Join(e.AvailableTeams, ", "),
	)
}

func (e *TeamConfigError) Unwrap() error { return ErrTeamsNotConfigured }

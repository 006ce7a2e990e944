package roster

import "errors"

var (
	ErrRosterNotFound    = errors.New("roster entry not found")
	ErrInvalidSupervisor = errors.New("supervisor not found or not assigned to this plant")
	ErrInvalidLaborers   = errors.New("one or more laborers not found or not assigned to this plant")
)

package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrPlantNotFound      = errors.New("power plant not found")
	ErrNoExecutives       = errors.New("no executives found for this plant")
	ErrNoNonExecutives    = errors.New("no non-executives found for this plant")
	ErrEmployeeNotInPlant = errors.New("employee not found or not assigned to this plant")
)

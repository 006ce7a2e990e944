package employee

import "context"

// EmployeeService exposes read-only staff lookups used by the payroll screens
type EmployeeService interface {
	ListPlants(ctx context.Context) ([]PlantResponse, error)
	ListExecutives(ctx context.Context, plantID int64) ([]PlantEmployeeResponse, error)
	ListNonExecutives(ctx context.Context, plantID int64) ([]PlantEmployeeResponse, error)
}

package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByEmpNo(ctx context.Context, empNo string) (Employee, error)
	GetInPlant(ctx context.Context, id int64, plantID int64) (Employee, error)
	GetByEmpNoInPlant(ctx context.Context, empNo string, plantID int64) (Employee, error)
	// ListByPlantAndType returns the plant's employees of one user type ordered by id
	ListByPlantAndType(ctx context.Context, plantID int64, userType UserType) ([]Employee, error)
	// ListRosterStaff returns laborers and supervisors of the plant ordered by name
	ListRosterStaff(ctx context.Context, plantID int64) ([]Employee, error)
	// CountInPlantWithDesignation counts how many of ids belong to the plant with one of the designations
	CountInPlantWithDesignation(ctx context.Context, ids []int64, plantID int64, designations []string) (int, error)
}

type PlantRepository interface {
	List(ctx context.Context) ([]Plant, error)
	GetByID(ctx context.Context, id int64) (Plant, error)
	GetByName(ctx context.Context, name string) (Plant, error)
}

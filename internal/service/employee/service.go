package employee

import (
	"context"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	plantRepo    employee.PlantRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, plantRepo employee.PlantRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo, plantRepo: plantRepo}
}

// ListPlants implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListPlants(ctx context.Context) ([]employee.PlantResponse, error) {
	plants, err := s.plantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]employee.PlantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, employee.PlantResponse{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

func (s *EmployeeServiceImpl) listByType(ctx context.Context, plantID int64, userType employee.UserType, notFound error) ([]employee.PlantEmployeeResponse, error) {
	plant, err := s.plantRepo.GetByID(ctx, plantID)
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.ListByPlantAndType(ctx, plant.ID, userType)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, notFound
	}

	out := make([]employee.PlantEmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp := employee.NewPlantEmployeeResponse(e)
		if resp.PlantName == "" {
			resp.PlantName = plant.Name
		}
		out = append(out, resp)
	}
	return out, nil
}

// ListExecutives implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListExecutives(ctx context.Context, plantID int64) ([]employee.PlantEmployeeResponse, error) {
	return s.listByType(ctx, plantID, employee.UserTypeExecutive, employee.ErrNoExecutives)
}

// ListNonExecutives implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListNonExecutives(ctx context.Context, plantID int64) ([]employee.PlantEmployeeResponse, error) {
	return s.listByType(ctx, plantID, employee.UserTypeNonExecutive, employee.ErrNoNonExecutives)
}

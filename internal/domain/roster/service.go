package roster

import "context"

type RosterService interface {
	ListPlantNames(ctx context.Context) ([]string, error)
	ListStaff(ctx context.Context, plantName string) ([]StaffResponse, error)
	List(ctx context.Context, req ListRosterRequest) ([]RosterResponse, error)
	Upsert(ctx context.Context, req UpsertRosterRequest) (RosterResponse, error)
	Estimate(ctx context.Context, req EstimateRequest) ([]EstimateResponse, error)
	LaborerHours(ctx context.Context, req ListRosterRequest) ([]LaborerHoursResponse, error)
}

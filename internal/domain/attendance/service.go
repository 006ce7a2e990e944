package attendance

import (
	"context"
	"io"
)

type AttendanceService interface {
	// NonExecutive and laborer path
	Create(ctx context.Context, req CreateAttendanceRequest) (CreatedResponse, error)
	CreateBulk(ctx context.Context, reqs []CreateAttendanceRequest) (ImportResponse, error)
	ImportExcel(ctx context.Context, file io.Reader) (ImportResponse, error)
	Summary(ctx context.Context, req SummaryRequest) ([]SummaryResponse, error)

	// Executive path
	CreateExecutive(ctx context.Context, req CreateAttendanceRequest) (CreatedResponse, error)
	ImportExecutiveExcel(ctx context.Context, file io.Reader) (ImportResponse, error)
	ExecutiveSummary(ctx context.Context, req SummaryRequest) ([]ExecutiveSummaryResponse, error)
}

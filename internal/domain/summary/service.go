package summary

import "context"

type SummaryService interface {
	// Draft stage
	ExecutiveSummary(ctx context.Context, req PeriodRequest) ([]ExecutiveSummaryResponse, error)
	SaveExecutiveSummary(ctx context.Context, req SaveExecutiveSummaryRequest) error
	NonExecutiveSummary(ctx context.Context, req PeriodRequest) ([]NonExecutiveSummaryResponse, error)
	SaveNonExecutiveSummary(ctx context.Context, req SaveNonExecutiveSummaryRequest) error
	Reconcile(ctx context.Context, req ReconcileRequest) (ReconciliationResponse, error)

	// Final stage
	ListFinalExecutive(ctx context.Context, req PeriodRequest) ([]FinalExecutiveResponse, error)
	ApproveFinalExecutive(ctx context.Context, req ApproveFinalExecutiveRequest) error
	ListFinalNonExecutive(ctx context.Context, req PeriodRequest) ([]FinalNonExecutiveResponse, error)
	ApproveFinalNonExecutive(ctx context.Context, req ApproveFinalNonExecutiveRequest) error
}

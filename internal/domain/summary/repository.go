package summary

import "context"

type SummaryRepository interface {
	UpsertExecutiveDraft(ctx context.Context, s ExecutiveSummary) error
	UpsertNonExecutiveDraft(ctx context.Context, s NonExecutiveSummary) error
	UpsertFinalExecutive(ctx context.Context, r FinalExecutiveRecord) error
	UpsertFinalNonExecutive(ctx context.Context, r FinalNonExecutiveRecord) error
	// ListFinal* return the approved rows of a plant month ordered by employee id
	ListFinalExecutive(ctx context.Context, plantID int64, year, month int) ([]FinalExecutiveRecord, error)
	ListFinalNonExecutive(ctx context.Context, plantID int64, year, month int) ([]FinalNonExecutiveRecord, error)
}

package mock

import (
	"context"

	"github.com/fwojciec/docinventory"
)

var _ docinventory.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of docinventory.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, r *docinventory.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, r *docinventory.Report) error {
	return w.WriteReportFn(ctx, r)
}

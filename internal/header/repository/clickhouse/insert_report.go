package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
)

const insertReportQuery = `
INSERT INTO headerlink_reports (
	run_id,
	network,
	source,
	from_height,
	to_height,
	headers,
	links,
	status,
	break_height,
	expected_hash,
	actual_hash,
	created_at
) VALUES`

// InsertReport stores a verification run summary.
func (r *Repository) InsertReport(ctx context.Context, report model.Report) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_report", report.Network, err, start)
	}()

	batch, err := r.conn.PrepareBatch(ctx, insertReportQuery)
	if err != nil {
		return fmt.Errorf("prepare report batch: %w", err)
	}

	if err = batch.Append(
		report.RunID,
		string(report.Network),
		report.Source,
		report.FromHeight,
		report.ToHeight,
		report.Headers,
		report.Links,
		string(report.Status),
		report.BreakHeight,
		report.ExpectedHash,
		report.ActualHash,
		report.CreatedAt,
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append report: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

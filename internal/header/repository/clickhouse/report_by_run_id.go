package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
)

// ErrReportNotFound is returned when no report exists for a run id.
var ErrReportNotFound = errors.New("report not found")

const reportByRunIDQuery = `
SELECT
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
FROM headerlink_reports
WHERE network = ? AND run_id = ?
LIMIT 1`

// ReportByRunID loads the summary of one verification run.
func (r *Repository) ReportByRunID(ctx context.Context, network model.Network, runID string) (report model.Report, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("report_by_run_id", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, reportByRunIDQuery, string(network), runID)
	if err != nil {
		return model.Report{}, fmt.Errorf("query report: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Report{}, fmt.Errorf("iterate report: %w", err)
		}
		err = fmt.Errorf("%w: %s", ErrReportNotFound, runID)
		return model.Report{}, err
	}

	var networkName, status string
	if err = rows.Scan(
		&report.RunID,
		&networkName,
		&report.Source,
		&report.FromHeight,
		&report.ToHeight,
		&report.Headers,
		&report.Links,
		&status,
		&report.BreakHeight,
		&report.ExpectedHash,
		&report.ActualHash,
		&report.CreatedAt,
	); err != nil {
		return model.Report{}, fmt.Errorf("scan report: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Report{}, fmt.Errorf("iterate report: %w", err)
	}
	report.Network = model.Network(networkName)
	report.Status = model.ReportStatus(status)
	return report, nil
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
)

const insertLinksQuery = `
INSERT INTO headerlink_links (
	run_id,
	network,
	height,
	prev_height,
	hash,
	expected_prev_hash,
	actual_prev_hash,
	linked,
	created_at
) VALUES`

// InsertLinks stores per-pair link checks.
func (r *Repository) InsertLinks(ctx context.Context, links []model.LinkCheck) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_links", firstNetwork(links), err, start)
	}()

	if len(links) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertLinksQuery)
	if err != nil {
		return fmt.Errorf("prepare links batch: %w", err)
	}

	for _, link := range links {
		if err = batch.Append(
			link.RunID,
			string(link.Network),
			link.Height,
			link.PrevHeight,
			link.Hash,
			link.ExpectedPrevHash,
			link.ActualPrevHash,
			link.Linked,
			link.CreatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append link: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert links: %w", err)
	}
	return nil
}

func firstNetwork(links []model.LinkCheck) model.Network {
	if len(links) == 0 {
		return ""
	}
	return links[0].Network
}

package bitcoin

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/pkg/workerpool"
)

const (
	defaultWorkerCount = 8
	defaultRetries     = 3
	defaultRetryDelay  = 2 * time.Second
	maxRetryDelay      = 30 * time.Second
)

// HeaderSource fetches header records from a node.
type HeaderSource struct {
	rpc         RPCClient
	workerCount int
	retries     int
	retryDelay  time.Duration
	sleep       func(context.Context, time.Duration) error
	logger      *zap.Logger
}

// NewHeaderSource creates a HeaderSource over rpc.
func NewHeaderSource(rpc RPCClient, logger *zap.Logger) *HeaderSource {
	return &HeaderSource{
		rpc:         rpc,
		workerCount: defaultWorkerCount,
		retries:     defaultRetries,
		retryDelay:  defaultRetryDelay,
		sleep:       clock.SleepWithContext,
		logger:      logger.Named("headerSource"),
	}
}

// LatestHeight returns the height of the node's best block.
func (s *HeaderSource) LatestHeight(_ context.Context) (uint32, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint32(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchRange fetches headers for heights from..to inclusive, ordered by
// height.
func (s *HeaderSource) FetchRange(ctx context.Context, from, to uint32) ([]model.RawHeader, error) {
	if from > to {
		return nil, fmt.Errorf("invalid header range %d..%d", from, to)
	}
	heights := make([]uint32, 0, int(to-from)+1)
	for h := from; ; h++ {
		heights = append(heights, h)
		if h == to {
			break
		}
	}

	return workerpool.Map(ctx, s.workerCount, heights, s.FetchHeader)
}

// FetchHeader fetches the header at height, retrying transient failures.
func (s *HeaderSource) FetchHeader(ctx context.Context, height uint32) (model.RawHeader, error) {
	for attempt := 0; ; attempt++ {
		raw, err := s.fetchHeader(ctx, height)
		if err == nil {
			return raw, nil
		}
		if attempt >= s.retries || ctx.Err() != nil {
			return model.RawHeader{}, err
		}
		delay := clock.Backoff(s.retryDelay, maxRetryDelay, attempt)
		s.logger.Warn("fetch header failed, retrying",
			zap.Uint32("height", height),
			zap.Int("attempt", attempt+1),
			zap.Duration("sleep", delay),
			zap.Error(err),
		)
		if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
			return model.RawHeader{}, sleepErr
		}
	}
}

func (s *HeaderSource) fetchHeader(ctx context.Context, height uint32) (model.RawHeader, error) {
	if err := ctx.Err(); err != nil {
		return model.RawHeader{}, err
	}
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return model.RawHeader{}, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	src, err := s.rpc.GetBlockHeaderVerbose(hash)
	if err != nil {
		return model.RawHeader{}, fmt.Errorf("get block header %s: %w", hash, err)
	}
	raw, err := HeaderFromVerbose(*src)
	if err != nil {
		return model.RawHeader{}, err
	}
	if raw.Height != height {
		return model.RawHeader{}, fmt.Errorf("node returned header %d for height %d", raw.Height, height)
	}
	return raw, nil
}

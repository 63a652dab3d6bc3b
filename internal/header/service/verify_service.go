// Package service wires header sources, the store and the verifier into
// verification and proving runs.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/codec"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/store"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/verifier"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/pkg/batcher"
)

const (
	SourceFile = "file"
	SourceRPC  = "rpc"
)

const (
	linkBatchSize     = 1000
	linkFlushInterval = time.Second
	linkFlushRPS      = 50
)

// Result is the outcome of one verification run.
type Result struct {
	RunID  string
	Store  *store.Store
	Report verifier.Report
}

type VerifyService struct {
	logger   *zap.Logger
	network  model.Network
	verifier ChainVerifier
	repo     ReportRepository
	metrics  Metrics
	newRunID func() string
	now      func() time.Time
}

// NewVerifyService builds a VerifyService. repo may be nil, in which case
// reports are only logged.
func NewVerifyService(
	v ChainVerifier,
	repo ReportRepository,
	metrics Metrics,
	network model.Network,
	logger *zap.Logger,
) (*VerifyService, error) {
	if v == nil {
		return nil, errors.New("chain verifier is required")
	}
	if metrics == nil {
		return nil, errors.New("verify service metrics is required")
	}
	return &VerifyService{
		logger:   logger.Named("verifyService").With(zap.String("network", string(network))),
		network:  network,
		verifier: v,
		repo:     repo,
		metrics:  metrics,
		newRunID: uuid.NewString,
		now:      time.Now,
	}, nil
}

// VerifyFile verifies the headers in a JSON header file.
func (s *VerifyService) VerifyFile(ctx context.Context, path string, opts ...codec.ParseOption) (Result, error) {
	started := time.Now()
	records, err := codec.ParseFile(path, opts...)
	s.metrics.ObserveLoad(SourceFile, err, len(records), started)
	if err != nil {
		return Result{}, err
	}
	s.logger.Info("loaded header file", zap.String("path", path), zap.Int("headers", len(records)))
	return s.VerifyRecords(ctx, SourceFile, records)
}

// VerifyRange verifies headers from..to inclusive fetched from src.
func (s *VerifyService) VerifyRange(ctx context.Context, src RangeSource, from, to uint32) (Result, error) {
	started := time.Now()
	records, err := src.FetchRange(ctx, from, to)
	s.metrics.ObserveLoad(SourceRPC, err, len(records), started)
	if err != nil {
		return Result{}, fmt.Errorf("fetch headers %d..%d: %w", from, to, err)
	}
	s.logger.Info("fetched headers", zap.Uint32("from", from), zap.Uint32("to", to), zap.Int("headers", len(records)))
	return s.VerifyRecords(ctx, SourceRPC, records)
}

// VerifyTip verifies the last count headers ending at the source's best
// block.
func (s *VerifyService) VerifyTip(ctx context.Context, src RangeSource, count uint32) (Result, error) {
	if count == 0 {
		return Result{}, errors.New("tip header count must be positive")
	}
	tip, err := src.LatestHeight(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("latest height: %w", err)
	}
	from := uint32(0)
	if tip >= count {
		from = tip - count + 1
	}
	return s.VerifyRange(ctx, src, from, tip)
}

// VerifyRecords builds a store from records and checks its linkage. A chain
// break is returned as a *verifier.ChainBreakError alongside the partial
// result.
func (s *VerifyService) VerifyRecords(ctx context.Context, source string, records []model.RawHeader) (Result, error) {
	st, err := store.Build(records)
	if err != nil {
		return Result{}, err
	}

	res := Result{RunID: s.newRunID(), Store: st}
	logger := s.logger.With(zap.String("run_id", res.RunID), zap.String("source", source))

	var verifyErr error
	res.Report, verifyErr = s.verifier.Verify(st)

	if s.repo == nil {
		return res, verifyErr
	}
	if err := s.writeReport(ctx, source, res.RunID, res.Report, verifyErr); err != nil {
		logger.Error("write report failed", zap.Error(err))
		return res, errors.Join(verifyErr, fmt.Errorf("write report: %w", err))
	}
	logger.Info("report written", zap.Int("links", len(res.Report.Links)))
	return res, verifyErr
}

func (s *VerifyService) writeReport(ctx context.Context, source, runID string, report verifier.Report, verifyErr error) (err error) {
	defer func() {
		s.metrics.ObserveReport(err)
	}()

	createdAt := s.now().UTC().Truncate(time.Second)
	summary := model.Report{
		RunID:      runID,
		Network:    s.network,
		Source:     source,
		FromHeight: report.FromHeight,
		ToHeight:   report.ToHeight,
		Headers:    uint32(report.Headers),
		Links:      uint32(len(report.Links)),
		Status:     model.ReportLinked,
		CreatedAt:  createdAt,
	}
	var breakErr *verifier.ChainBreakError
	if errors.As(verifyErr, &breakErr) {
		summary.Status = model.ReportChainBreak
		summary.BreakHeight = breakErr.Height
		summary.ExpectedHash = breakErr.Expected.String()
		summary.ActualHash = breakErr.Actual.String()
	}

	if err = s.writeLinks(ctx, runID, createdAt, report.Links); err != nil {
		return err
	}
	return s.repo.InsertReport(ctx, summary)
}

func (s *VerifyService) writeLinks(ctx context.Context, runID string, createdAt time.Time, links []verifier.Link) error {
	if len(links) == 0 {
		return nil
	}

	b := batcher.New[model.LinkCheck](
		s.logger.Named("linkBatcher"),
		s.repo.InsertLinks,
		linkBatchSize,
		linkFlushInterval,
		linkFlushRPS,
	)
	b.Start(ctx)

	for _, link := range links {
		check := model.LinkCheck{
			RunID:            runID,
			Network:          s.network,
			Height:           link.Height,
			PrevHeight:       link.PrevHeight,
			Hash:             link.Hash.String(),
			ExpectedPrevHash: link.Expected.String(),
			ActualPrevHash:   link.Actual.String(),
			Linked:           link.Linked,
			CreatedAt:        createdAt,
		}
		if err := b.Add(ctx, check); err != nil {
			return errors.Join(err, b.Stop())
		}
	}
	return b.Stop()
}

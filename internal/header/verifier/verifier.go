// Package verifier checks hash-chain continuity across height-ordered headers.
package verifier

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/codec"
)

// ErrChainBreak matches every *ChainBreakError.
var ErrChainBreak = errors.New("chain break")

// ChainBreakError pinpoints the first header whose previous-hash field does
// not match the block hash of the header stored before it.
type ChainBreakError struct {
	Height     uint32
	PrevHeight uint32
	Expected   chainhash.Hash
	Actual     chainhash.Hash
}

func (e *ChainBreakError) Error() string {
	return fmt.Sprintf("chain break at height %d: previous hash %s, want %s (block hash of height %d)",
		e.Height, e.Actual, e.Expected, e.PrevHeight)
}

// Is reports whether target is ErrChainBreak.
func (e *ChainBreakError) Is(target error) bool {
	return target == ErrChainBreak
}

// Link is the outcome of checking one consecutive header pair.
type Link struct {
	Height     uint32
	PrevHeight uint32
	Hash       chainhash.Hash
	Expected   chainhash.Hash
	Actual     chainhash.Hash
	Linked     bool
}

// Report summarizes a verification run. On a chain break Links ends with the
// failing pair.
type Report struct {
	Headers    int
	FromHeight uint32
	ToHeight   uint32
	Links      []Link
}

// Check walks headers in ascending height order and returns the first chain
// break. Stores with fewer than two headers are trivially linked. Heights
// need not be contiguous.
func Check(headers Headers) (Report, error) {
	report := Report{Headers: headers.Len()}
	if report.Headers > 1 {
		report.Links = make([]Link, 0, report.Headers-1)
	}

	var (
		prevHeight uint32
		prevHash   chainhash.Hash
		first      = true
	)
	for height, h := range headers.Ascending() {
		hash := codec.BlockHash(h)
		if first {
			first = false
			report.FromHeight = height
			report.ToHeight = height
			prevHeight, prevHash = height, hash
			continue
		}

		link := Link{
			Height:     height,
			PrevHeight: prevHeight,
			Hash:       hash,
			Expected:   prevHash,
			Actual:     h.PrevBlockHash,
			Linked:     h.PrevBlockHash.IsEqual(&prevHash),
		}
		report.Links = append(report.Links, link)
		report.ToHeight = height
		if !link.Linked {
			return report, &ChainBreakError{
				Height:     height,
				PrevHeight: prevHeight,
				Expected:   prevHash,
				Actual:     h.PrevBlockHash,
			}
		}
		prevHeight, prevHash = height, hash
	}
	return report, nil
}

// Verifier runs Check with logging and metrics.
type Verifier struct {
	logger  *zap.Logger
	metrics Metrics
}

// New builds a Verifier.
func New(metrics Metrics, logger *zap.Logger) (*Verifier, error) {
	if metrics == nil {
		return nil, errors.New("verifier metrics is required")
	}
	return &Verifier{
		logger:  logger.Named("verifier"),
		metrics: metrics,
	}, nil
}

// Verify checks chain linkage across headers.
func (v *Verifier) Verify(headers Headers) (report Report, err error) {
	started := time.Now()
	defer func() {
		v.metrics.ObserveVerify(err, len(report.Links), started)
	}()

	report, err = Check(headers)
	if err != nil {
		var breakErr *ChainBreakError
		if errors.As(err, &breakErr) {
			v.logger.Error("chain break",
				zap.Uint32("height", breakErr.Height),
				zap.Uint32("prev_height", breakErr.PrevHeight),
				zap.Stringer("expected", breakErr.Expected),
				zap.Stringer("actual", breakErr.Actual),
			)
		}
		return report, err
	}

	v.logger.Info("chain linked",
		zap.Int("headers", report.Headers),
		zap.Int("links", len(report.Links)),
		zap.Uint32("from", report.FromHeight),
		zap.Uint32("to", report.ToHeight),
	)
	return report, nil
}

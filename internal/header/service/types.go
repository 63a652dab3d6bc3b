package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/executor"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/verifier"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RangeSource interface {
		LatestHeight(ctx context.Context) (uint32, error)
		FetchRange(ctx context.Context, from, to uint32) ([]model.RawHeader, error)
	}
	ChainVerifier interface {
		Verify(headers verifier.Headers) (verifier.Report, error)
	}
	ReportRepository interface {
		InsertReport(ctx context.Context, report model.Report) error
		InsertLinks(ctx context.Context, links []model.LinkCheck) error
	}
	Metrics interface {
		ObserveLoad(source string, err error, headers int, started time.Time)
		ObserveReport(err error)
	}
	CommitmentExecutor interface {
		Execute(ctx context.Context, in executor.Inputs) (*executor.Receipt, error)
	}
)

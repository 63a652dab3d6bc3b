package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/executor"
)

// Proof is a verified commitment receipt for one header.
type Proof struct {
	Height  uint32
	Inputs  executor.Inputs
	Receipt *executor.Receipt
	IsValid bool
}

type ProveService struct {
	logger   *zap.Logger
	executor CommitmentExecutor
	sealer   executor.Sealer
}

func NewProveService(exec CommitmentExecutor, sealer executor.Sealer, logger *zap.Logger) (*ProveService, error) {
	if exec == nil {
		return nil, errors.New("commitment executor is required")
	}
	if sealer == nil {
		return nil, errors.New("receipt sealer is required")
	}
	return &ProveService{
		logger:   logger.Named("proveService"),
		executor: exec,
		sealer:   sealer,
	}, nil
}

// Prove commits to whether the header at height links to the header stored
// before it, then checks the receipt. A receipt that verifies but commits
// false is not an error; IsValid reports it.
func (s *ProveService) Prove(ctx context.Context, headers executor.HeaderLookup, height uint32) (Proof, error) {
	in, err := executor.InputsForHeight(headers, height)
	if err != nil {
		return Proof{}, fmt.Errorf("inputs for height %d: %w", height, err)
	}

	receipt, err := s.executor.Execute(ctx, in)
	if err != nil {
		return Proof{}, fmt.Errorf("execute height %d: %w", height, err)
	}

	isValid, err := executor.Verify(receipt, executor.ProgramID, s.sealer)
	if err != nil {
		return Proof{}, fmt.Errorf("verify receipt for height %d: %w", height, err)
	}

	s.logger.Info("receipt verified",
		zap.Uint32("height", height),
		zap.Stringer("program_id", receipt.ProgramID),
		zap.Stringer("seal", receipt.Seal),
		zap.Bool("is_valid", isValid),
	)
	return Proof{Height: height, Inputs: in, Receipt: receipt, IsValid: isValid}, nil
}

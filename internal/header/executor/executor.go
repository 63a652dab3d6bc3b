// Package executor hosts the commitment program: it validates and supplies
// inputs, runs the program once, and packages the committed output into a
// receipt that a third party can check against the program identity.
package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/codec"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/commitment"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
)

// ProgramID identifies the previous-hash commitment program.
var ProgramID = chainhash.HashH([]byte("blockinsight7000-headerlink/commitment/prev-hash/v1"))

var (
	ErrInvalidInputs         = errors.New("invalid commitment inputs")
	ErrProgramMismatch       = errors.New("receipt program id mismatch")
	ErrInvalidSeal           = errors.New("receipt seal mismatch")
	ErrMalformedPublicValues = errors.New("malformed public values")
)

// Inputs are the two byte sequences supplied to the program.
type Inputs struct {
	ClaimedPrevHash []byte
	Header          []byte
}

// Validate enforces the program's input shape.
func (in Inputs) Validate() error {
	if len(in.ClaimedPrevHash) != chainhash.HashSize {
		return fmt.Errorf("%w: claimed previous hash is %d bytes, want %d", ErrInvalidInputs, len(in.ClaimedPrevHash), chainhash.HashSize)
	}
	if len(in.Header) != model.HeaderSize {
		return fmt.Errorf("%w: header is %d bytes, want %d", ErrInvalidInputs, len(in.Header), model.HeaderSize)
	}
	return nil
}

// InputsForHeight builds the inputs for the header at height, claiming the
// block hash of the header stored just below it.
func InputsForHeight(headers HeaderLookup, height uint32) (Inputs, error) {
	h, err := headers.Get(height)
	if err != nil {
		return Inputs{}, err
	}
	_, prev, err := headers.Predecessor(height)
	if err != nil {
		return Inputs{}, err
	}
	claimed := codec.BlockHash(prev)
	b := codec.Bytes(h)
	return Inputs{
		ClaimedPrevHash: claimed.CloneBytes(),
		Header:          b[:],
	}, nil
}

// Receipt carries the committed public values of one execution.
type Receipt struct {
	ProgramID    chainhash.Hash
	PublicValues []byte
	Seal         chainhash.Hash
}

// IsValid decodes the committed boolean without checking the seal.
func (r *Receipt) IsValid() (bool, error) {
	return decodePublicValues(r.PublicValues)
}

// DigestSealer seals with SHA256d(program id | public values). It protects
// integrity of the public values; it does not attest to the inputs.
type DigestSealer struct{}

// Seal implements Sealer.
func (DigestSealer) Seal(programID chainhash.Hash, publicValues []byte) chainhash.Hash {
	buf := make([]byte, 0, chainhash.HashSize+len(publicValues))
	buf = append(buf, programID[:]...)
	buf = append(buf, publicValues...)
	return chainhash.DoubleHashH(buf)
}

// Executor runs the commitment program.
type Executor struct {
	programID chainhash.Hash
	sealer    Sealer
	metrics   Metrics
	logger    *zap.Logger
}

// New builds an Executor for ProgramID.
func New(sealer Sealer, metrics Metrics, logger *zap.Logger) (*Executor, error) {
	if sealer == nil {
		return nil, errors.New("executor sealer is required")
	}
	if metrics == nil {
		return nil, errors.New("executor metrics is required")
	}
	return &Executor{
		programID: ProgramID,
		sealer:    sealer,
		metrics:   metrics,
		logger:    logger.Named("executor"),
	}, nil
}

// Execute validates inputs, runs the program and returns its receipt.
func (e *Executor) Execute(ctx context.Context, in Inputs) (receipt *Receipt, err error) {
	started := time.Now()
	var isValid bool
	defer func() {
		e.metrics.ObserveExecute(err, isValid, started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = in.Validate(); err != nil {
		return nil, err
	}

	env := newEnvironment(in)
	commitment.Run(env)
	if env.loads != 1 || len(env.commits) != 1 {
		err = fmt.Errorf("program loaded inputs %d times and committed %d outputs", env.loads, len(env.commits))
		return nil, err
	}
	isValid = env.commits[0]

	publicValues := encodePublicValues(isValid)
	receipt = &Receipt{
		ProgramID:    e.programID,
		PublicValues: publicValues,
		Seal:         e.sealer.Seal(e.programID, publicValues),
	}
	e.logger.Debug("program executed",
		zap.Bool("is_valid", isValid),
		zap.Stringer("seal", receipt.Seal),
	)
	return receipt, nil
}

// Verify checks the receipt against programID and sealer and returns the
// committed boolean.
func Verify(receipt *Receipt, programID chainhash.Hash, sealer Sealer) (bool, error) {
	if receipt == nil {
		return false, errors.New("receipt is nil")
	}
	if !receipt.ProgramID.IsEqual(&programID) {
		return false, fmt.Errorf("%w: got %s, want %s", ErrProgramMismatch, receipt.ProgramID, programID)
	}
	seal := sealer.Seal(receipt.ProgramID, receipt.PublicValues)
	if !seal.IsEqual(&receipt.Seal) {
		return false, ErrInvalidSeal
	}
	return receipt.IsValid()
}

func encodePublicValues(isValid bool) []byte {
	if isValid {
		return []byte{1}
	}
	return []byte{0}
}

func decodePublicValues(b []byte) (bool, error) {
	if len(b) != 1 {
		return false, fmt.Errorf("%w: %d bytes", ErrMalformedPublicValues, len(b))
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: bool byte %#x", ErrMalformedPublicValues, b[0])
	}
}

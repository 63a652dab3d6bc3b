package codec

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/pkg/safe"
)

// ErrMalformedInput reports a header source that is not a valid sequence of
// RPC header records.
var ErrMalformedInput = errors.New("malformed header input")

type rpcHeader struct {
	Hash              *string `json:"hash"`
	Confirmations     *int64  `json:"confirmations"`
	Height            *uint64 `json:"height"`
	Version           *uint64 `json:"version"`
	MerkleRoot        *string `json:"merkleroot"`
	Time              *uint64 `json:"time"`
	Nonce             *uint64 `json:"nonce"`
	Bits              *string `json:"bits"`
	PreviousBlockHash *string `json:"previousblockhash"`
}

type parseOptions struct {
	allowUnknownFields bool
}

// ParseOption tunes Parse.
type ParseOption func(*parseOptions)

// WithUnknownFields accepts extra bitcoind fields such as versionHex or
// chainwork instead of rejecting the record.
func WithUnknownFields() ParseOption {
	return func(o *parseOptions) {
		o.allowUnknownFields = true
	}
}

// ParseFile reads a JSON header dump from path.
func ParseFile(path string, opts ...ParseOption) ([]model.RawHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open header file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Parse(f, opts...)
}

// Parse decodes a JSON array of RPC header records.
func Parse(r io.Reader, opts ...ParseOption) ([]model.RawHeader, error) {
	o := parseOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	dec := json.NewDecoder(r)
	if !o.allowUnknownFields {
		dec.DisallowUnknownFields()
	}

	var records []*rpcHeader
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a json array", ErrMalformedInput)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after header array", ErrMalformedInput)
	}

	out := make([]model.RawHeader, 0, len(records))
	for i, rec := range records {
		raw, err := convertRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedInput, i, err)
		}
		out = append(out, raw)
	}
	return out, nil
}

func convertRecord(rec *rpcHeader) (model.RawHeader, error) {
	if rec == nil {
		return model.RawHeader{}, errors.New("null record")
	}
	var missing string
	switch {
	case rec.Hash == nil:
		missing = "hash"
	case rec.Confirmations == nil:
		missing = "confirmations"
	case rec.Height == nil:
		missing = "height"
	case rec.Version == nil:
		missing = "version"
	case rec.MerkleRoot == nil:
		missing = "merkleroot"
	case rec.Time == nil:
		missing = "time"
	case rec.Nonce == nil:
		missing = "nonce"
	case rec.Bits == nil:
		missing = "bits"
	case rec.PreviousBlockHash == nil && *rec.Height != 0:
		missing = "previousblockhash"
	}
	if missing != "" {
		return model.RawHeader{}, fmt.Errorf("missing field %q", missing)
	}

	var (
		raw model.RawHeader
		err error
	)
	raw.Confirmations = *rec.Confirmations
	if raw.Height, err = safe.Uint32(*rec.Height); err != nil {
		return model.RawHeader{}, fmt.Errorf("height: %w", err)
	}
	if raw.Version, err = safe.Uint32(*rec.Version); err != nil {
		return model.RawHeader{}, fmt.Errorf("version: %w", err)
	}
	if raw.Time, err = safe.Uint32(*rec.Time); err != nil {
		return model.RawHeader{}, fmt.Errorf("time: %w", err)
	}
	if raw.Nonce, err = safe.Uint32(*rec.Nonce); err != nil {
		return model.RawHeader{}, fmt.Errorf("nonce: %w", err)
	}
	if raw.Hash, err = DecodeRPCHash(*rec.Hash); err != nil {
		return model.RawHeader{}, fmt.Errorf("hash: %w", err)
	}
	if raw.MerkleRoot, err = DecodeRPCHash(*rec.MerkleRoot); err != nil {
		return model.RawHeader{}, fmt.Errorf("merkleroot: %w", err)
	}
	if raw.Bits, err = DecodeRPCBits(*rec.Bits); err != nil {
		return model.RawHeader{}, fmt.Errorf("bits: %w", err)
	}
	// The genesis block has no predecessor and bitcoind omits the field.
	if rec.PreviousBlockHash != nil {
		if raw.PrevBlockHash, err = DecodeRPCHash(*rec.PreviousBlockHash); err != nil {
			return model.RawHeader{}, fmt.Errorf("previousblockhash: %w", err)
		}
	}
	return raw, nil
}

// DecodeRPCHash decodes a 64-character hex hash, keeping RPC byte order.
func DecodeRPCHash(s string) ([32]byte, error) {
	var out [32]byte
	err := decodeHex(out[:], s)
	return out, err
}

// DecodeRPCBits decodes an 8-character hex compact target, keeping RPC byte
// order.
func DecodeRPCBits(s string) ([4]byte, error) {
	var out [4]byte
	err := decodeHex(out[:], s)
	return out, err
}

// decodeHex fills dst with the hex string s, which must encode exactly
// len(dst) bytes.
func decodeHex(dst []byte, s string) error {
	if len(s) != hex.EncodedLen(len(dst)) {
		return fmt.Errorf("want %d hex bytes, got %d characters", len(dst), len(s))
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return err
	}
	return nil
}

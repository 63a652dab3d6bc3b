// Package bitcoin reads header records from a bitcoind node over JSON-RPC.
package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/codec"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/pkg/safe"
)

// HeaderFromVerbose maps a getblockheader result into an RPC-ordered record.
func HeaderFromVerbose(src btcjson.GetBlockHeaderVerboseResult) (model.RawHeader, error) {
	var (
		raw model.RawHeader
		err error
	)
	if raw.Height, err = safe.Uint32(src.Height); err != nil {
		return model.RawHeader{}, fmt.Errorf("header %s height: %w", src.Hash, err)
	}
	if raw.Time, err = safe.Uint32(src.Time); err != nil {
		return model.RawHeader{}, fmt.Errorf("header %d time: %w", src.Height, err)
	}
	if raw.Nonce, err = safe.Uint32(src.Nonce); err != nil {
		return model.RawHeader{}, fmt.Errorf("header %d nonce: %w", src.Height, err)
	}
	// Version is a signed field on the wire; keep its bit pattern.
	raw.Version = uint32(src.Version)
	raw.Confirmations = src.Confirmations

	if raw.Hash, err = codec.DecodeRPCHash(src.Hash); err != nil {
		return model.RawHeader{}, fmt.Errorf("header %d hash: %w", src.Height, err)
	}
	if raw.MerkleRoot, err = codec.DecodeRPCHash(src.MerkleRoot); err != nil {
		return model.RawHeader{}, fmt.Errorf("header %d merkle root: %w", src.Height, err)
	}
	if raw.Bits, err = codec.DecodeRPCBits(src.Bits); err != nil {
		return model.RawHeader{}, fmt.Errorf("header %d bits: %w", src.Height, err)
	}
	// bitcoind omits previousblockhash for the genesis block.
	if src.PreviousHash != "" {
		if raw.PrevBlockHash, err = codec.DecodeRPCHash(src.PreviousHash); err != nil {
			return model.RawHeader{}, fmt.Errorf("header %d previous hash: %w", src.Height, err)
		}
	}
	return raw, nil
}

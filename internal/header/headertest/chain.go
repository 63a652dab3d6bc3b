// Package headertest builds linked header fixtures for tests.
package headertest

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/codec"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
)

const (
	baseTime = 1_713_500_000
	version  = 0x20000000
)

// Bits is the compact target used by generated headers, in RPC order.
var Bits = [4]byte{0x17, 0x03, 0x42, 0x19}

// Chain returns len(nonces) linked RPC records starting at height start.
// Every record's previous hash is the block hash of the record before it.
func Chain(start uint32, nonces ...uint32) []model.RawHeader {
	prev := chainhash.DoubleHashH([]byte(fmt.Sprintf("parent-of-%d", start)))
	out := make([]model.RawHeader, 0, len(nonces))
	for i, nonce := range nonces {
		height := start + uint32(i)
		h := model.Header{
			Version:       version,
			PrevBlockHash: prev,
			MerkleRoot:    chainhash.DoubleHashH([]byte(fmt.Sprintf("merkle-%d", height))),
			Time:          baseTime + 600*uint32(i),
			Bits:          [4]byte{Bits[3], Bits[2], Bits[1], Bits[0]},
			Nonce:         nonce,
		}
		raw := codec.ToRaw(h, height)
		raw.Confirmations = int64(len(nonces) - i)
		out = append(out, raw)
		prev = codec.BlockHash(h)
	}
	return out
}

// JSON renders records the way bitcoind getblockheader prints them.
func JSON(records []model.RawHeader) []byte {
	type rpcHeader struct {
		Hash              string `json:"hash"`
		Confirmations     int64  `json:"confirmations"`
		Height            uint32 `json:"height"`
		Version           uint32 `json:"version"`
		MerkleRoot        string `json:"merkleroot"`
		Time              uint32 `json:"time"`
		Nonce             uint32 `json:"nonce"`
		Bits              string `json:"bits"`
		PreviousBlockHash string `json:"previousblockhash"`
	}
	out := make([]rpcHeader, 0, len(records))
	for _, r := range records {
		out = append(out, rpcHeader{
			Hash:              hex.EncodeToString(r.Hash[:]),
			Confirmations:     r.Confirmations,
			Height:            r.Height,
			Version:           r.Version,
			MerkleRoot:        hex.EncodeToString(r.MerkleRoot[:]),
			Time:              r.Time,
			Nonce:             r.Nonce,
			Bits:              hex.EncodeToString(r.Bits[:]),
			PreviousBlockHash: hex.EncodeToString(r.PrevBlockHash[:]),
		})
	}
	b, err := json.Marshal(out)
	if err != nil {
		panic(err)
	}
	return b
}

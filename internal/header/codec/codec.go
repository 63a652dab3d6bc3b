// Package codec translates bitcoind RPC header records into consensus byte
// order and serializes them into the 80-byte header layout.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
)

// ToCanonical converts an RPC-ordered record into consensus byte order.
// RPC interfaces print hashes and bits reversed relative to the wire format.
func ToCanonical(r model.RawHeader) model.Header {
	h := model.Header{
		Version: r.Version,
		Time:    r.Time,
		Nonce:   r.Nonce,
	}
	h.PrevBlockHash = chainhash.Hash(reversed32(r.PrevBlockHash))
	h.MerkleRoot = chainhash.Hash(reversed32(r.MerkleRoot))
	h.Bits = reversed4(r.Bits)
	return h
}

// ToRaw is the inverse of ToCanonical. The record hash is derived from the
// header itself.
func ToRaw(h model.Header, height uint32) model.RawHeader {
	return model.RawHeader{
		Hash:          reversed32(BlockHash(h)),
		Height:        height,
		Version:       h.Version,
		MerkleRoot:    reversed32(h.MerkleRoot),
		Time:          h.Time,
		Nonce:         h.Nonce,
		Bits:          reversed4(h.Bits),
		PrevBlockHash: reversed32(h.PrevBlockHash),
	}
}

// ToWire maps a header onto the btcd wire representation.
func ToWire(h model.Header) wire.BlockHeader {
	return wire.BlockHeader{
		Version:    int32(h.Version),
		PrevBlock:  h.PrevBlockHash,
		MerkleRoot: h.MerkleRoot,
		Timestamp:  time.Unix(int64(h.Time), 0),
		Bits:       binary.LittleEndian.Uint32(h.Bits[:]),
		Nonce:      h.Nonce,
	}
}

// FromWire maps a btcd wire header into a model.Header.
func FromWire(w wire.BlockHeader) model.Header {
	h := model.Header{
		Version:       uint32(w.Version),
		PrevBlockHash: w.PrevBlock,
		MerkleRoot:    w.MerkleRoot,
		Time:          uint32(w.Timestamp.Unix()),
		Nonce:         w.Nonce,
	}
	binary.LittleEndian.PutUint32(h.Bits[:], w.Bits)
	return h
}

// Bytes serializes the header as version | prev hash | merkle root | time |
// bits | nonce with numeric fields little-endian.
func Bytes(h model.Header) [model.HeaderSize]byte {
	var buf bytes.Buffer
	buf.Grow(model.HeaderSize)
	wh := ToWire(h)
	if err := wh.Serialize(&buf); err != nil {
		// bytes.Buffer writes never fail.
		panic(fmt.Sprintf("serialize header: %v", err))
	}

	var out [model.HeaderSize]byte
	copy(out[:], buf.Bytes())
	return out
}

// BlockHash returns SHA256(SHA256(Bytes(h))) in consensus byte order.
func BlockHash(h model.Header) chainhash.Hash {
	b := Bytes(h)
	return chainhash.DoubleHashH(b[:])
}

func reversed32(in [32]byte) [32]byte {
	var out [32]byte
	for i := range in {
		out[len(in)-1-i] = in[i]
	}
	return out
}

func reversed4(in [4]byte) [4]byte {
	return [4]byte{in[3], in[2], in[1], in[0]}
}

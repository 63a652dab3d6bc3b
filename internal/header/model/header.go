// Package model defines header records shared by the linkage components.
package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// HeaderSize is the length of a serialized block header.
const HeaderSize = 80

// RawHeader is a header as reported by bitcoind JSON-RPC. Hash-valued fields
// and Bits are kept in RPC byte order.
type RawHeader struct {
	Hash          [32]byte
	Confirmations int64
	Height        uint32
	Version       uint32
	MerkleRoot    [32]byte
	Time          uint32
	Nonce         uint32
	Bits          [4]byte
	PrevBlockHash [32]byte
}

// Header is a header in consensus byte order.
type Header struct {
	Version       uint32
	PrevBlockHash chainhash.Hash
	MerkleRoot    chainhash.Hash
	Time          uint32
	Bits          [4]byte
	Nonce         uint32
}

// Package commitment is the single-header computation run inside a
// verifiable execution environment. It reads a claimed previous-block hash
// and one serialized header, and commits whether the header's embedded
// previous-hash field equals the claim.
//
// The computation is deterministic and side-effect free apart from the two
// Environment calls. Input lengths are a precondition enforced by whoever
// supplies them.
package commitment

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	prevHashStart = 4
	prevHashEnd   = prevHashStart + chainhash.HashSize
)

// Environment is the narrow surface of the execution environment.
type Environment interface {
	LoadInputs() (claimedPrevHash, headerBytes []byte)
	CommitOutput(isValid bool)
}

// Run loads the inputs once, evaluates them and commits the result once.
func Run(env Environment) {
	claimed, header := env.LoadInputs()
	env.CommitOutput(Evaluate(claimed, header))
}

// Evaluate reports whether header[4:36] equals claimedPrevHash.
//
// The block hash of the header is computed but does not feed the result yet;
// comparing it against the difficulty target in bits is the missing step.
func Evaluate(claimedPrevHash, headerBytes []byte) bool {
	digest := chainhash.DoubleHashH(headerBytes)
	_ = digest

	embedded := headerBytes[prevHashStart:prevHashEnd]
	return bytes.Equal(embedded, claimedPrevHash)
}

package executor

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Sealer binds committed public values to a program identity.
	Sealer interface {
		Seal(programID chainhash.Hash, publicValues []byte) chainhash.Hash
	}
	Metrics interface {
		ObserveExecute(err error, isValid bool, started time.Time)
	}
	HeaderLookup interface {
		Get(height uint32) (model.Header, error)
		Predecessor(height uint32) (uint32, model.Header, error)
	}
)

package verifier

import (
	"iter"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Headers is the read side of a header store.
	Headers interface {
		Ascending() iter.Seq2[uint32, model.Header]
		Len() int
	}
	Metrics interface {
		ObserveVerify(err error, links int, started time.Time)
	}
)

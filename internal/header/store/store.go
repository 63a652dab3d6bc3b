// Package store holds canonical headers ordered by height for one
// validation run.
package store

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/codec"
	"github.com/goodnatureofminers/blockinsight7000-headerlink/internal/header/model"
)

var (
	// ErrDuplicateHeight reports two input records at the same height.
	ErrDuplicateHeight = errors.New("duplicate header height")
	// ErrNotFound reports a lookup for a height the store does not hold.
	ErrNotFound = errors.New("header not found")
)

type entry struct {
	height uint32
	header model.Header
}

// Store is an immutable height-ordered header collection. It is safe for
// concurrent readers once Build returns.
type Store struct {
	entries []entry
	index   map[uint32]int
}

// Build converts every record to canonical order and indexes it by height.
func Build(records []model.RawHeader) (*Store, error) {
	entries := make([]entry, 0, len(records))
	seen := make(map[uint32]struct{}, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.Height]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateHeight, rec.Height)
		}
		seen[rec.Height] = struct{}{}
		entries = append(entries, entry{height: rec.Height, header: codec.ToCanonical(rec)})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.height < b.height:
			return -1
		case a.height > b.height:
			return 1
		default:
			return 0
		}
	})

	index := make(map[uint32]int, len(entries))
	for i, e := range entries {
		index[e.height] = i
	}
	return &Store{entries: entries, index: index}, nil
}

// Get returns the header at height.
func (s *Store) Get(height uint32) (model.Header, error) {
	i, ok := s.index[height]
	if !ok {
		return model.Header{}, fmt.Errorf("%w: height %d", ErrNotFound, height)
	}
	return s.entries[i].header, nil
}

// Predecessor returns the nearest stored header below height, following the
// same ordering the verifier walks.
func (s *Store) Predecessor(height uint32) (uint32, model.Header, error) {
	i, ok := s.index[height]
	if !ok {
		return 0, model.Header{}, fmt.Errorf("%w: height %d", ErrNotFound, height)
	}
	if i == 0 {
		return 0, model.Header{}, fmt.Errorf("%w: no header below height %d", ErrNotFound, height)
	}
	prev := s.entries[i-1]
	return prev.height, prev.header, nil
}

// Ascending yields (height, header) pairs in strictly increasing height order.
// The sequence may be ranged over any number of times.
func (s *Store) Ascending() iter.Seq2[uint32, model.Header] {
	return func(yield func(uint32, model.Header) bool) {
		for _, e := range s.entries {
			if !yield(e.height, e.header) {
				return
			}
		}
	}
}

// Heights returns the stored heights in ascending order.
func (s *Store) Heights() []uint32 {
	out := make([]uint32, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.height)
	}
	return out
}

// Len returns the number of stored headers.
func (s *Store) Len() int {
	return len(s.entries)
}

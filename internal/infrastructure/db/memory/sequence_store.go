// Package memory provides in-memory store implementations used by tests and
// local single-process runs. They honour the same contracts as the Mongo
// repositories but keep everything behind a mutex.
package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"
)

// SequenceStore is a mutex-guarded ports.SequenceStore. The lock spans the
// whole read-increment-write, so concurrent callers always observe distinct,
// strictly increasing values per series.
type SequenceStore struct {
	mu     sync.Mutex
	base   int64
	values map[string]int64
}

func NewSequenceStore(base int64) *SequenceStore {
	return &SequenceStore{base: base, values: make(map[string]int64)}
}

func (s *SequenceStore) Next(_ context.Context, series string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.values[series]
	if !ok || cur < s.base {
		cur = s.base
	}
	cur++
	s.values[series] = cur
	return cur, nil
}

// SeedRaw installs a raw stored value for a series, as a legacy deployment
// might have left it: an identifier string with a prefix, a bare number, or
// garbage. Non-numeric suffixes and values below the base are absorbed by
// Next, which reseeds from the base instead of failing.
func (s *SequenceStore) SeedRaw(series, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := strings.LastIndex(raw, "-"); i >= 0 {
		raw = raw[i+1:]
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		n = 0
	}
	s.values[series] = n
}

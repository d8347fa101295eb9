package ports

import "context"

// Series names for the two independent identifier counters.
const (
	SeriesAWB = "awb"
	SeriesRef = "ref"
)

// SequenceStore hands out the next value in a monotonic integer series.
// Implementations must guarantee that concurrent callers never observe the
// same value for the same series: the read-increment-write must be a single
// atomic unit against the backing store. Gaps from abandoned attempts are
// acceptable; duplicates are not.
type SequenceStore interface {
	// Next returns the next value for the named series. A fresh series
	// starts at base+1. Backend failures surface as
	// domain.ErrStorageUnavailable; no value may be assumed issued then.
	Next(ctx context.Context, series string) (int64, error)
}

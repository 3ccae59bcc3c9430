package rtree

import "go.uber.org/zap"

// Option configures an RTree at construction time.
type Option func(*RTree)

// WithLogger attaches a structured logger that receives one Debug
// line per public mutation (Insert, Erase, Update). This tracing is
// purely diagnostic: it is never required to observe query results
// and carries no behavior of its own.
func WithLogger(log *zap.Logger) Option {
	return func(r *RTree) {
		if log != nil {
			r.log = log
		}
	}
}

// withBounds overrides the fan-out bounds. Unexported: the reference
// design fixes M=8, m=2 for callers, so this exists only so this
// package's own tests can exercise split and underflow behavior at
// smaller, easier-to-hand-construct bounds.
func withBounds(maxEntries, minEntries int) Option {
	return func(r *RTree) {
		r.maxEntries = maxEntries
		r.minEntries = minEntries
	}
}

package statement

import (
	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Table at construction time. Options are applied in
// order; a later option that sets the same collaborator wins.
type Option[V comparable, G Ordered[G], C Ordered[C], D comparable, S comparable] func(*Table[V, G, C, D, S]) error

// WithLogger attaches a structured logger. Dropped statements are logged at
// Debug, recorded misbehavior at Warn. Tables built without WithLogger use
// log.NewNoOpLogger(), so logging is always observational and never load
// bearing.
func WithLogger[V comparable, G Ordered[G], C Ordered[C], D comparable, S comparable](logger log.Logger) Option[V, G, C, D, S] {
	return func(t *Table[V, G, C, D, S]) error {
		if logger == nil {
			return ErrNilLogger
		}
		t.log = logger
		return nil
	}
}

// WithMetrics registers a fixed set of Prometheus collectors scoped to this
// Table instance (see metrics.go). Returns an error if registration fails,
// e.g. because of a name collision with a collector already registered
// against reg.
func WithMetrics[V comparable, G Ordered[G], C Ordered[C], D comparable, S comparable](reg prometheus.Registerer) Option[V, G, C, D, S] {
	return func(t *Table[V, G, C, D, S]) error {
		if reg == nil {
			return ErrNilRegisterer
		}
		m, err := newTableMetrics(reg)
		if err != nil {
			return err
		}
		t.metrics = m
		return nil
	}
}

// WithUnknownDigestHook attaches a synchronous callback invoked whenever a
// Valid, Invalid, or Available statement is dropped because it references a
// digest the table has never seen. The table does not buffer such
// statements; it drops them whether or not a hook is set. The hook never changes the drop
// behavior; it exists solely so a caller can plug in queueing or
// retransmission-request logic without this package taking an opinion on
// policy.
func WithUnknownDigestHook[V comparable, G Ordered[G], C Ordered[C], D comparable, S comparable](hook func(SignedStatement[C, D, S])) Option[V, G, C, D, S] {
	return func(t *Table[V, G, C, D, S]) error {
		if hook == nil {
			return ErrNilUnknownDigestHook
		}
		t.onUnknownDigest = hook
		return nil
	}
}

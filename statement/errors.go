package statement

import "errors"

// Construction-time errors returned by Option values passed to NewTable.
// ImportStatement itself never returns an error: byzantine and malformed
// input is classified into drop / misbehavior / accept instead (see
// Table.ImportStatement).
var (
	// ErrNilLogger is returned by WithLogger when given a nil logger.
	ErrNilLogger = errors.New("statement: nil logger")
	// ErrNilRegisterer is returned by WithMetrics when given a nil
	// prometheus.Registerer.
	ErrNilRegisterer = errors.New("statement: nil metrics registerer")
	// ErrNilUnknownDigestHook is returned by WithUnknownDigestHook when
	// given a nil callback.
	ErrNilUnknownDigestHook = errors.New("statement: nil unknown-digest hook")
)

package sweep

import "errors"

// ErrOracleFailure wraps any error returned by an oracle's Evaluate call.
// Run propagates it immediately, discarding all sweep state; the caller
// receives no boundary list (nil) in that case.
var ErrOracleFailure = errors.New("sweep: oracle evaluation failed")

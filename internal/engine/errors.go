package engine

import "errors"

// ErrNotReady means the extraction backend was never initialized (missing
// API key at startup). Requests fail fast on it instead of attempting a call.
var ErrNotReady = errors.New("extraction backend not ready")

// ExtractionError reports a failed structured-query extraction. It is the
// only provider-independent failure surfaced to callers: the backend call
// failed, the reply was not decodable, or a required field was missing.
type ExtractionError struct {
	Stage string // "backend", "decode", "validate"
	Err   error
}

func (e *ExtractionError) Error() string {
	return "extract " + e.Stage + ": " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

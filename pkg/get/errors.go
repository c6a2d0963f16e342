package get

import (
	"errors"
	"fmt"
)

var errEmptyBody = errors.New("empty response body")

// TransportError reports a network, protocol, or cancellation failure.
// It originates outside the decoding layer; Unwrap exposes the underlying
// error, so errors.Is(err, context.Canceled) works for cancelled sends.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EncodingError reports a request body serialization failure. It is
// surfaced before any network call is attempted.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding request body: %v", e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// DecodingError reports response bytes that do not match the expected
// result shape. The raw bytes and the target type name are retained for
// diagnostics.
type DecodingError struct {
	Data   []byte
	Target string
	Err    error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding %d bytes into %s: %v", len(e.Data), e.Target, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

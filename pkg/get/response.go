package get

import "net/http"

// Response is the typed outcome of one completed exchange. Data always
// holds the raw response bytes verbatim, whatever the decoded type is.
// A Response is constructed once per exchange and never mutated; Map
// produces a new envelope.
type Response[T any] struct {
	// Value is the decoded payload.
	Value T
	// Data is the raw response body.
	Data []byte
	// Request is the outgoing request exactly as sent, after header
	// merging and query serialization.
	Request *http.Request
	// Response carries the received status line and headers. Its body
	// has already been drained into Data.
	Response *http.Response
	// StatusCode duplicates Response.StatusCode for convenience.
	StatusCode int
	// Metrics holds transport timing data, nil when the transport did
	// not supply any.
	Metrics *Timing
}

// Map re-wraps an envelope with a transformed value. Every field except
// Value is copied unchanged.
func Map[T, U any](r *Response[T], fn func(T) U) *Response[U] {
	return &Response[U]{
		Value:      fn(r.Value),
		Data:       r.Data,
		Request:    r.Request,
		Response:   r.Response,
		StatusCode: r.StatusCode,
		Metrics:    r.Metrics,
	}
}

// Header returns the value of a response header.
func (r *Response[T]) Header(key string) string {
	if r.Response == nil {
		return ""
	}
	return r.Response.Header.Get(key)
}

// IsSuccess returns true if the status code is in the 2xx range.
func (r *Response[T]) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the status code is in the 3xx range.
func (r *Response[T]) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the status code is in the 4xx range.
func (r *Response[T]) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the status code is in the 5xx range.
func (r *Response[T]) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}

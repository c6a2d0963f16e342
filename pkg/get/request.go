package get

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request describes one HTTP exchange. The type parameter T is the expected
// decoded result type; it has no runtime representation in the descriptor
// itself and is only consumed by Send when decoding the response body.
//
// A Request is a value and is never mutated after construction.
type Request[T any] struct {
	Method  string
	Path    string
	Query   []QueryParam
	Body    Body
	Headers map[string]string
	ID      string
}

// QueryParam is a single (key, optional value) query pair. A nil Value is
// rendered as a bare key with no "=". Duplicate keys are legal and order
// is preserved into the final query string.
type QueryParam struct {
	Key   string
	Value *string
}

// Param returns a query pair with a value.
func Param(key, value string) QueryParam {
	return QueryParam{Key: key, Value: &value}
}

// Flag returns a valueless query pair, rendered as the bare key.
func Flag(key string) QueryParam {
	return QueryParam{Key: key}
}

// Option configures the optional fields of a request descriptor.
type Option func(*options)

type options struct {
	query   []QueryParam
	headers map[string]string
	id      string
}

// WithQuery appends a key=value query pair.
func WithQuery(key, value string) Option {
	return func(o *options) {
		o.query = append(o.query, Param(key, value))
	}
}

// WithQueryFlag appends a valueless query pair.
func WithQueryFlag(key string) Option {
	return func(o *options) {
		o.query = append(o.query, Flag(key))
	}
}

// WithQueryParams appends pre-built query pairs, preserving their order.
func WithQueryParams(params ...QueryParam) Option {
	return func(o *options) {
		o.query = append(o.query, params...)
	}
}

// WithHeader sets a request header, overriding any client default.
func WithHeader(key, value string) Option {
	return func(o *options) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithID sets an opaque correlation identifier for the request. The
// identifier is not interpreted; the client attaches it to logs and to
// the X-Request-Id header.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// Get returns a GET request descriptor.
func Get[T any](path string, opts ...Option) Request[T] {
	return newRequest[T](http.MethodGet, path, nil, opts)
}

// Post returns a POST request descriptor. A nil body means the request
// carries no body bytes at all.
func Post[T any](path string, body Body, opts ...Option) Request[T] {
	return newRequest[T](http.MethodPost, path, body, opts)
}

// Put returns a PUT request descriptor.
func Put[T any](path string, body Body, opts ...Option) Request[T] {
	return newRequest[T](http.MethodPut, path, body, opts)
}

// Patch returns a PATCH request descriptor.
func Patch[T any](path string, body Body, opts ...Option) Request[T] {
	return newRequest[T](http.MethodPatch, path, body, opts)
}

// Delete returns a DELETE request descriptor.
func Delete[T any](path string, body Body, opts ...Option) Request[T] {
	return newRequest[T](http.MethodDelete, path, body, opts)
}

// Options returns an OPTIONS request descriptor.
func Options[T any](path string, opts ...Option) Request[T] {
	return newRequest[T](http.MethodOptions, path, nil, opts)
}

// Head returns a HEAD request descriptor.
func Head[T any](path string, opts ...Option) Request[T] {
	return newRequest[T](http.MethodHead, path, nil, opts)
}

// Trace returns a TRACE request descriptor.
func Trace[T any](path string, opts ...Option) Request[T] {
	return newRequest[T](http.MethodTrace, path, nil, opts)
}

func newRequest[T any](method, path string, body Body, opts []Option) Request[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return Request[T]{
		Method:  method,
		Path:    path,
		Query:   o.query,
		Body:    body,
		Headers: o.headers,
		ID:      o.id,
	}
}

// EncodeQuery renders query pairs in order, percent-escaped. Valueless
// pairs are rendered as the bare key and duplicate keys are kept as-is.
func EncodeQuery(params []QueryParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		if p.Value != nil {
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(*p.Value))
		}
	}
	return b.String()
}

// Build constructs the outgoing http.Request. The URL may be relative;
// combining it with a base URL is the client's job, not the descriptor's.
// A body serialization failure surfaces as an EncodingError before any
// network I/O is attempted.
func (r Request[T]) Build() (*http.Request, error) {
	var reader io.Reader
	var contentType string
	if r.Body != nil {
		data, ct, err := r.Body.MarshalBody()
		if err != nil {
			return nil, &EncodingError{Err: err}
		}
		reader = bytes.NewReader(data)
		contentType = ct
	}

	target := r.Path
	if q := EncodeQuery(r.Query); q != "" {
		target += "?" + q
	}

	req, err := http.NewRequest(r.Method, target, reader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// Descriptor headers win over the body's content type.
	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}
	if r.ID != "" {
		req.Header.Set("X-Request-Id", r.ID)
	}

	return req, nil
}

package get

import (
	"context"
	"net/http"
)

// Exchange is the raw outcome of one HTTP exchange as produced by an
// Exchanger: the request as sent, the received response with its body
// drained into Body, and optional timing data.
type Exchange struct {
	Request  *http.Request
	Response *http.Response
	Body     []byte
	Timing   *Timing
}

// Exchanger performs HTTP exchanges. Client is the default
// implementation; gettest.Transport is a stub for tests. Implementations
// must honor context cancellation and report failures as TransportError.
type Exchanger interface {
	Exchange(ctx context.Context, req *http.Request) (*Exchange, error)
}

// Send performs a described exchange and decodes the response body into
// T. Transport failures propagate unchanged and decoding never runs on a
// failed exchange; decoding failures carry the raw bytes in a
// DecodingError.
func Send[T any](ctx context.Context, ex Exchanger, r Request[T]) (*Response[T], error) {
	req, err := r.Build()
	if err != nil {
		return nil, err
	}

	exch, err := ex.Exchange(ctx, req)
	if err != nil {
		return nil, err
	}

	value, err := decode[T](exch.Body)
	if err != nil {
		return nil, err
	}

	return &Response[T]{
		Value:      value,
		Data:       exch.Body,
		Request:    exch.Request,
		Response:   exch.Response,
		StatusCode: exch.Response.StatusCode,
		Metrics:    exch.Timing,
	}, nil
}

// Package gettest provides a stub transport for testing code built on
// the get package, in the spirit of net/http/httptest but without
// opening sockets.
package gettest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/nryrk/Get/pkg/get"
)

// Stub describes one canned exchange outcome. An empty Method or Path
// matches any request.
type Stub struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
	// Delay postpones the reply; cancellation during the delay surfaces
	// as a TransportError, as a real transport would.
	Delay time.Duration
	// Err, when set, fails the exchange instead of replying.
	Err error
	// Timing, when set, is attached to the exchange as its metrics.
	Timing *get.Timing
}

// Transport is a get.Exchanger that replies from stubs and records every
// request it sees. It is safe for concurrent use.
type Transport struct {
	mu       sync.Mutex
	stubs    []Stub
	requests []*http.Request
	bodies   [][]byte
}

// NewTransport creates a transport with the given stubs. The first stub
// matching a request's method and path wins; stubs are not consumed.
func NewTransport(stubs ...Stub) *Transport {
	return &Transport{stubs: stubs}
}

// Stub appends another stub.
func (t *Transport) Stub(s Stub) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stubs = append(t.stubs, s)
}

// Requests returns the recorded outgoing requests in arrival order.
func (t *Transport) Requests() []*http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*http.Request(nil), t.requests...)
}

// Bodies returns the recorded request bodies, index-aligned with
// Requests. A request that carried no body records nil.
func (t *Transport) Bodies() [][]byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([][]byte(nil), t.bodies...)
}

// Exchange implements get.Exchanger.
func (t *Transport) Exchange(ctx context.Context, req *http.Request) (*get.Exchange, error) {
	var body []byte
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, &get.TransportError{URL: req.URL.String(), Err: err}
		}
		body = data
		req.Body = io.NopCloser(bytes.NewReader(data))
	}

	t.mu.Lock()
	t.requests = append(t.requests, req)
	t.bodies = append(t.bodies, body)
	stub, ok := t.match(req)
	t.mu.Unlock()

	if !ok {
		return nil, &get.TransportError{
			URL: req.URL.String(),
			Err: fmt.Errorf("no stub for %s %s", req.Method, req.URL.Path),
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, &get.TransportError{URL: req.URL.String(), Err: err}
	}
	if stub.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, &get.TransportError{URL: req.URL.String(), Err: ctx.Err()}
		case <-time.After(stub.Delay):
		}
	}
	if stub.Err != nil {
		return nil, &get.TransportError{URL: req.URL.String(), Err: stub.Err}
	}

	status := stub.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	header := stub.Header
	if header == nil {
		header = make(http.Header)
	}

	resp := &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(stub.Body)),
		Request:    req,
	}

	return &get.Exchange{
		Request:  req,
		Response: resp,
		Body:     stub.Body,
		Timing:   stub.Timing,
	}, nil
}

func (t *Transport) match(req *http.Request) (Stub, bool) {
	for _, s := range t.stubs {
		if s.Method != "" && s.Method != req.Method {
			continue
		}
		if s.Path != "" && s.Path != req.URL.Path {
			continue
		}
		return s, true
	}
	return Stub{}, false
}

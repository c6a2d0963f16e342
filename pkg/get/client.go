package get

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/http/httptrace"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Client performs HTTP exchanges against a base URL with default headers,
// optional rate limiting, and detailed timing capture. It implements
// Exchanger and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	limiter    *rate.Limiter
	delegate   Delegate
	logger     zerolog.Logger
}

// Delegate customizes client behavior around an exchange.
type Delegate interface {
	// WillSendRequest is invoked on the fully built outgoing request
	// just before it is sent, e.g. to attach authorization.
	WillSendRequest(req *http.Request)
	// ValidateResponse inspects a completed exchange. A non-nil error
	// fails the exchange before any decoding happens.
	ValidateResponse(exch *Exchange) error
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a client with the given options.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
		logger:  zerolog.Nop(),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithBaseURL sets the base URL that relative request paths are joined to.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-exchange timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithDefaultHeader adds a header sent on every exchange unless the
// request sets the same header itself.
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit throttles exchanges with a token bucket of r per second
// and the given burst.
func WithRateLimit(r float64, burst int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(r), burst)
	}
}

// WithDelegate installs exchange hooks.
func WithDelegate(delegate Delegate) ClientOption {
	return func(c *Client) {
		c.delegate = delegate
	}
}

// WithLogger attaches a structured logger; exchanges are logged at debug
// level with their correlation id.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// Exchange sends the request and returns the raw outcome with timing
// metrics. Network, protocol, and cancellation failures are reported as
// TransportError so callers can tell them apart from decoding failures.
func (c *Client) Exchange(ctx context.Context, req *http.Request) (*Exchange, error) {
	out := req.Clone(ctx)

	resolved, err := c.resolveURL(out.URL)
	if err != nil {
		return nil, &TransportError{URL: out.URL.String(), Err: err}
	}
	out.URL = resolved
	out.Host = ""

	for key, value := range c.headers {
		if out.Header.Get(key) == "" {
			out.Header.Set(key, value)
		}
	}

	id := out.Header.Get("X-Request-Id")
	if id == "" {
		id = uuid.NewString()
		out.Header.Set("X-Request-Id", id)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{URL: out.URL.String(), Err: err}
		}
	}

	if c.delegate != nil {
		c.delegate.WillSendRequest(out)
	}

	timing := &Timing{StartTime: time.Now()}

	// Capture phase boundaries the same way the response time is
	// attributed: each phase measured from the end of the previous one.
	var dnsStart, connectStart, tlsStart time.Time
	lastPhaseEnd := timing.StartTime

	trace := &httptrace.ClientTrace{
		DNSStart: func(httptrace.DNSStartInfo) {
			dnsStart = time.Now()
		},
		DNSDone: func(httptrace.DNSDoneInfo) {
			timing.DNSLookup = time.Since(dnsStart)
			lastPhaseEnd = time.Now()
		},
		ConnectStart: func(network, addr string) {
			connectStart = time.Now()
		},
		ConnectDone: func(network, addr string, err error) {
			if err == nil {
				timing.TCPConnect = time.Since(connectStart)
				lastPhaseEnd = time.Now()
			}
		},
		TLSHandshakeStart: func() {
			tlsStart = time.Now()
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			if err == nil {
				timing.TLSHandshake = time.Since(tlsStart)
				lastPhaseEnd = time.Now()
			}
		},
		GotFirstResponseByte: func() {
			timing.TimeToFirstByte = time.Since(lastPhaseEnd)
		},
	}
	out = out.WithContext(httptrace.WithClientTrace(ctx, trace))

	c.logger.Debug().
		Str("id", id).
		Str("method", out.Method).
		Stringer("url", out.URL).
		Msg("sending request")

	httpResp, err := c.httpClient.Do(out)
	if err != nil {
		return nil, &TransportError{URL: out.URL.String(), Err: err}
	}

	transferStart := time.Now()
	body, err := io.ReadAll(httpResp.Body)
	httpResp.Body.Close()
	if err != nil {
		return nil, &TransportError{URL: out.URL.String(), Err: err}
	}
	timing.ContentTransfer = time.Since(transferStart)
	timing.Total = time.Since(timing.StartTime)

	// The body has been drained; leave a readable copy behind.
	httpResp.Body = io.NopCloser(bytes.NewReader(body))

	exch := &Exchange{
		Request:  out,
		Response: httpResp,
		Body:     body,
		Timing:   timing,
	}

	if c.delegate != nil {
		if err := c.delegate.ValidateResponse(exch); err != nil {
			return nil, err
		}
	}

	c.logger.Debug().
		Str("id", id).
		Int("status", httpResp.StatusCode).
		Dur("total", timing.Total).
		Msg("received response")

	return exch, nil
}

// resolveURL joins a relative request URL to the client's base URL.
// Absolute request URLs are passed through untouched.
func (c *Client) resolveURL(u *url.URL) (*url.URL, error) {
	if u.IsAbs() || c.baseURL == "" {
		return u, nil
	}

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}

	out := *base
	if out.Path == "" {
		out.Path = u.Path
	} else {
		out.Path = strings.TrimRight(out.Path, "/") + "/" + strings.TrimLeft(u.Path, "/")
	}
	out.RawQuery = u.RawQuery
	return &out, nil
}

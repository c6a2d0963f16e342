package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nryrk/Get/pkg/get"
)

// Formatter renders outgoing requests and response envelopes.
type Formatter struct {
	Verbose bool
	scheme  *Scheme
}

// NewFormatter creates a formatter.
func NewFormatter(verbose, noColor bool) *Formatter {
	return &Formatter{
		Verbose: verbose,
		scheme:  NewScheme(noColor),
	}
}

// FormatRequest renders the outgoing request line, headers, and body.
func (f *Formatter) FormatRequest(req *http.Request) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(req.Method),
		f.scheme.URL.Sprint(req.URL.String())))

	if f.Verbose && len(req.Header) > 0 {
		buf.WriteString("  Headers:\n")
		for key, values := range req.Header {
			for _, value := range values {
				buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), value))
			}
		}
	}

	return buf.String()
}

// FormatResponse renders the status, timing, headers, and body of an
// envelope carrying raw bytes.
func (f *Formatter) FormatResponse(resp *get.Response[[]byte]) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusError
	if resp.IsSuccess() {
		statusColor = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.scheme.StatusWarn
	}

	status := fmt.Sprintf("%d", resp.StatusCode)
	if resp.Response != nil && resp.Response.Status != "" {
		status = resp.Response.Status
	}

	if resp.Metrics != nil {
		buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%dms)\n",
			statusColor.Sprint(status), resp.Metrics.TotalMillis()))
	} else {
		buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s\n", statusColor.Sprint(status)))
	}

	if f.Verbose && resp.Metrics != nil {
		m := resp.Metrics
		buf.WriteString("  Timing:\n")
		buf.WriteString(fmt.Sprintf("    DNS Lookup:         %dms\n", m.DNSLookupMillis()))
		buf.WriteString(fmt.Sprintf("    TCP Connection:     %dms\n", m.TCPConnectMillis()))
		buf.WriteString(fmt.Sprintf("    TLS Handshake:      %dms\n", m.TLSHandshakeMillis()))
		buf.WriteString(fmt.Sprintf("    Time to First Byte: %dms\n", m.TimeToFirstByteMillis()))
		buf.WriteString(fmt.Sprintf("    Content Transfer:   %dms\n", m.ContentTransferMillis()))
		buf.WriteString(fmt.Sprintf("    Total:              %dms\n", m.TotalMillis()))
	}

	if f.Verbose && resp.Response != nil {
		buf.WriteString("  Headers:\n")
		for key, values := range resp.Response.Header {
			for _, value := range values {
				buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), value))
			}
		}
	}

	if len(resp.Data) > 0 {
		buf.WriteString("  Body:\n")
		buf.WriteString(indentBody(prettyJSON(resp.Data)))
		buf.WriteString("\n")
	}

	return buf.String()
}

// prettyJSON indents a JSON body, or returns it verbatim when it is not
// JSON.
func prettyJSON(data []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "  ", "  "); err != nil {
		return string(data)
	}
	return out.String()
}

func indentBody(s string) string {
	return "  " + strings.TrimRight(s, "\n")
}

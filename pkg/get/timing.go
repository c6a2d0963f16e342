package get

import "time"

// Timing holds per-exchange timing metrics captured by the client via
// net/http/httptrace. Phases that did not occur (e.g. TLS on a plain
// HTTP exchange, DNS on a reused connection) stay zero.
type Timing struct {
	StartTime       time.Time
	DNSLookup       time.Duration
	TCPConnect      time.Duration
	TLSHandshake    time.Duration
	TimeToFirstByte time.Duration
	ContentTransfer time.Duration
	Total           time.Duration
}

// DNSLookupMillis returns the DNS lookup time in milliseconds.
func (t *Timing) DNSLookupMillis() int64 {
	return t.DNSLookup.Milliseconds()
}

// TCPConnectMillis returns the TCP connect time in milliseconds.
func (t *Timing) TCPConnectMillis() int64 {
	return t.TCPConnect.Milliseconds()
}

// TLSHandshakeMillis returns the TLS handshake time in milliseconds.
func (t *Timing) TLSHandshakeMillis() int64 {
	return t.TLSHandshake.Milliseconds()
}

// TimeToFirstByteMillis returns the time to first byte in milliseconds.
func (t *Timing) TimeToFirstByteMillis() int64 {
	return t.TimeToFirstByte.Milliseconds()
}

// ContentTransferMillis returns the body read time in milliseconds.
func (t *Timing) ContentTransferMillis() int64 {
	return t.ContentTransfer.Milliseconds()
}

// TotalMillis returns the total exchange time in milliseconds.
func (t *Timing) TotalMillis() int64 {
	return t.Total.Milliseconds()
}

// Package netprobe provides reachability checks for the automation
// endpoint exposed by the addon inside the target application.
package netprobe

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.trai.ch/zerr"
)

// Probe implements ports.NetProbe using net and net/http.
type Probe struct {
	dialer *net.Dialer
}

// NewProbe creates a new Probe.
func NewProbe() *Probe {
	return &Probe{dialer: &net.Dialer{}}
}

// TCPConnect reports whether a TCP connection to host:port succeeds within
// the timeout. Any failure reason (refused, timed out, unroutable) counts
// as unreachable.
func (p *Probe) TCPConnect(ctx context.Context, host string, port int, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := p.dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// HTTPGet performs a GET against url and returns the status code.
func (p *Probe) HTTPGet(ctx context.Context, url string, timeout time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to build request"), "url", url)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "request failed"), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // best effort close in defer

	return resp.StatusCode, nil
}

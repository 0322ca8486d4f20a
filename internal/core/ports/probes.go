package ports

import (
	"context"
	"time"
)

// Prober performs read-only filesystem checks.
//
//go:generate go run go.uber.org/mock/mockgen -source=probes.go -destination=mocks/mock_probes.go -package=mocks
type Prober interface {
	// Exists reports whether the path exists.
	Exists(path string) bool

	// ReadText reads the file at path as text.
	ReadText(path string) (string, error)

	// WaitForPath blocks until the path exists or the timeout elapses.
	WaitForPath(ctx context.Context, path string, timeout time.Duration) error
}

// NetProbe checks reachability of local network endpoints.
type NetProbe interface {
	// TCPConnect reports whether a TCP connection to host:port succeeds
	// within the timeout.
	TCPConnect(ctx context.Context, host string, port int, timeout time.Duration) bool

	// HTTPGet performs a GET against url and returns the status code.
	HTTPGet(ctx context.Context, url string, timeout time.Duration) (int, error)
}

package netprobe_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/access-ci/nvport/internal/adapters/netprobe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_TCPConnect_Reachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close() //nolint:errcheck // test cleanup

	go func() {
		for {
			conn, acceptErr := ln.Accept()
			if acceptErr != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	port := ln.Addr().(*net.TCPAddr).Port
	p := netprobe.NewProbe()

	assert.True(t, p.TCPConnect(context.Background(), "127.0.0.1", port, time.Second))
}

func TestProbe_TCPConnect_Unreachable(t *testing.T) {
	// Grab a free port and close it again so nothing listens there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	p := netprobe.NewProbe()

	assert.False(t, p.TCPConnect(context.Background(), "127.0.0.1", port, 200*time.Millisecond))
}

func TestProbe_HTTPGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/info" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := netprobe.NewProbe()

	status, err := p.HTTPGet(context.Background(), srv.URL+"/info", time.Second)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	status, err = p.HTTPGet(context.Background(), srv.URL+"/other", time.Second)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProbe_HTTPGet_ServerDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	p := netprobe.NewProbe()

	_, err = p.HTTPGet(context.Background(), "http://127.0.0.1:"+strconv.Itoa(port)+"/info", 200*time.Millisecond)
	require.Error(t, err)
}

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/config"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{ServerHost: "localhost", ServerPort: "8080"}

	srv := New(cfg, http.NotFoundHandler(), zap.NewNop())
	require.NotNil(t, srv)
	assert.Equal(t, "localhost:8080", srv.http.Addr)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	cfg := &config.Config{ServerHost: "127.0.0.1", ServerPort: "0"}
	srv := New(cfg, http.NotFoundHandler(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	cfg := &config.Config{ServerHost: "127.0.0.1", ServerPort: "-1"}
	srv := New(cfg, http.NotFoundHandler(), zap.NewNop())

	err := srv.Run(context.Background())
	assert.Error(t, err)
}

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sealed-vitae/internal/config"
	"github.com/MKhiriev/sealed-vitae/internal/handler"
	myHTTP "github.com/MKhiriev/sealed-vitae/internal/handler/http"
	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/internal/service"
)

func testHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, logger.Nop())}
}

func TestNewServer(t *testing.T) {
	t.Run("no handlers", func(t *testing.T) {
		_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})

	t.Run("no address", func(t *testing.T) {
		_, err := NewServer(testHandlers(), config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})

	t.Run("success", func(t *testing.T) {
		srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.RunServer(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	srv := newHTTPServer(slow, config.Server{HTTPAddress: ":0", RequestTimeout: 20 * time.Millisecond}, logger.Nop())
	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

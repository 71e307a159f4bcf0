// Package httpapi serves the read-only library API, the event websocket
// and the metrics endpoint.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/tana/internal/adapters/notify"
	"go.trai.ch/tana/internal/core/domain"
	"go.trai.ch/tana/internal/core/ports"
	"go.trai.ch/zerr"
)

const shutdownTimeout = 10 * time.Second

// Server exposes the library index over HTTP.
type Server struct {
	store  ports.LibraryStore
	hub    *notify.Hub
	logger ports.Logger
	srv    *http.Server
}

// NewServer builds the router and wraps it in an http.Server on addr.
// registry may be nil to disable the metrics endpoint.
func NewServer(
	addr string,
	store ports.LibraryStore,
	hub *notify.Hub,
	logger ports.Logger,
	registry *prometheus.Registry,
) *Server {
	s := &Server{
		store:  store,
		hub:    hub,
		logger: logger,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/healthz", s.handleHealthz)
	if registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
			registry, promhttp.HandlerOpts{},
		)))
	}

	api := router.Group("/api")
	api.GET("/library", s.handleLibrary)
	api.GET("/library/:id", s.handleCollection)
	api.GET("/events", notify.WSHandler(hub))

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Run serves until ctx is canceled, then shuts down gracefully. A nil
// error means the server stopped because of cancellation.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return zerr.Wrap(err, domain.ErrServeFailed.Error())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, domain.ErrServeFailed.Error())
	}
	return nil
}

// Handler returns the underlying handler for testing.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"collections": s.store.Len(),
		"subscribers": s.hub.Count(),
	})
}

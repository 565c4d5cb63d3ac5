package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/dshills/sheetdiff/internal/view"
)

// DefaultAddr is the listen address used when Options.Addr is empty.
const DefaultAddr = "127.0.0.1:2427"

const shutdownTimeout = 5 * time.Second

// Options configures Run.
type Options struct {
	// Addr is the listen address; DefaultAddr when empty.
	Addr string
}

// Run serves session on opts.Addr until ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, session *view.Session, opts Options) error {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           NewHandler(logger, session),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("preview server listening", "addr", opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "preview server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down preview server")
	}
	logger.Info("preview server stopped")
	return nil
}

type server struct {
	logger *slog.Logger

	// mu serializes every session access; handlers run concurrently.
	mu      sync.Mutex
	session *view.Session
}

// NewHandler returns the gin engine serving session.
func NewHandler(logger *slog.Logger, session *view.Session) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &server{logger: logger, session: session}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	s.initRoutes(r)
	return r
}

func (s *server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}

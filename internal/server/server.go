package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/taext/decimaltime"
	"github.com/taext/decimaltime/internal/config"
)

// ClockServer serves the current decimal time as plain text via HTTP.
//
// Unlike a static feed there is nothing to cache: every request renders a
// fresh reading through the configured layout, so the handler sends
// Cache-Control: no-store and no validators.
type ClockServer struct {
	Port   string
	Layout string

	// Location the clock is read in (UTC, local, or a fixed offset).
	Location *time.Location

	// Clock is injectable for deterministic handler tests.
	Clock Clock
}

// NewClockServer creates a new instance of the server.
func NewClockServer(port, layout string, loc *time.Location) *ClockServer {
	return &ClockServer{
		Port:     port,
		Layout:   layout,
		Location: loc,
		Clock:    RealClock{},
	}
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *ClockServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return fmt.Errorf(config.ErrPortRequired)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleClockRequest)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
			config.LogKeyFormat, s.Layout,
			config.LogKeyZone, s.Location.String(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// render produces the response body: the current decimal time pushed through
// the configured layout, newline-terminated.
func (s *ClockServer) render() string {
	dt := decimaltime.FromTime(s.Clock.Now().In(s.Location))
	return dt.Format(s.Layout) + "\n"
}

// handleClockRequest serves a fresh decimal time reading.
func (s *ClockServer) handleClockRequest(w http.ResponseWriter, r *http.Request) {
	// 1. Method Validation
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	body := s.render()

	// 2. Set Response Headers
	w.Header().Set(config.HeaderContentType, config.MimeTextPlain)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlNoStore)

	// 3. Serve Content
	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, strings.NewReader(body)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
			return
		}
	}

	slog.Debug(config.MsgClockServed,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyMethod, r.Method,
		config.LogKeyRemote, r.RemoteAddr,
		config.LogKeyValue, strings.TrimSuffix(body, "\n"),
	)
}

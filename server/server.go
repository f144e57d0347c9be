package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AmbientFM/logger"

	"github.com/gorilla/mux"
)

// NewRouter 使用 gorilla/mux 注册背景音 API
func NewRouter(h *AmbientHandler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/ambient", h.PlaybackHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/sounds", h.SoundsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/health", h.HealthHandler).Methods(http.MethodGet)
	return router
}

// Start serves the API on addr until SIGINT/SIGTERM, then shuts down gracefully.
// Auto-stop timers scheduled by requests live in this process; a player still
// waiting for one is stopped on shutdown.
func Start(addr string, h *AmbientHandler) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      NewRouter(h),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 创建一个通道来接收操作系统信号
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", logger.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	h.Shutdown(ctx)
	logger.Info("Server stopped")
	return nil
}

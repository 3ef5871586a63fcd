package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-flow/internal/config"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
)

type httpServer struct {
	server *http.Server
}

func newHTTPServer(mux http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	logger.Info().Msgf("HTTP server will listen on %s", cfg.HTTPAddress)

	return &httpServer{
		server: &http.Server{
			Addr:        cfg.HTTPAddress,
			Handler:     mux,
			ReadTimeout: cfg.RequestTimeout,
		},
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); h.server != nil && err != nil {
		// ошибки закрытия Listener
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}

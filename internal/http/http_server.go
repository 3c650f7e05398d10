package http

// this is the entry point of the http surface: the websocket route and the
// health endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/ws"
)

const healthCheckTimeout = 5 * time.Second

// JudgeHealth reports whether the external judge is reachable
type JudgeHealth interface {
	CheckHealth(ctx context.Context) bool
}

type Server struct {
	router      *mux.Router
	Port        int
	ServiceName string
	wsServer    *ws.WSServer
	judgeHealth JudgeHealth
	logger      primary.Logger
	srv         *http.Server
}

func NewServer(port int, serviceName string, wsServer *ws.WSServer, judgeHealth JudgeHealth, logger primary.Logger) *Server {
	return &Server{
		Port:        port,
		ServiceName: serviceName,
		wsServer:    wsServer,
		judgeHealth: judgeHealth,
		logger:      logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.wsServer.HandleConnection)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	s.wsServer.CloseAll()
	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Error("Failed to shut down http server", "error", err)
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	judgeStatus := "disconnected"
	if s.judgeHealth.CheckHealth(ctx) {
		judgeStatus = "connected"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"judge0": judgeStatus,
	})
}

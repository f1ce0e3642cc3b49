// Package telemetry streams simulation events to websocket spectators and
// serves a few HTTP status routes. It never touches simulation state: the
// driver pushes events and snapshots in between ticks.
package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/milk9111/wavecrawler/sim"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Addr string

	hub     *Broadcaster
	router  *mux.Router
	mu      sync.RWMutex
	latest  sim.Snapshot
	started time.Time
}

func NewServer(addr string) *Server {
	s := &Server{
		Addr:    addr,
		hub:     NewBroadcaster(),
		started: time.Now(),
	}
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.handleWS)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	r.Use(enableCORS)
	s.router = r
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Hub() *Broadcaster { return s.hub }

// Publish forwards the events of one tick to every spectator.
func (s *Server) Publish(session string, events []ecs.Event) {
	if len(events) == 0 || s.hub.SubscriberCount() == 0 {
		return
	}
	now := time.Now()
	for _, e := range events {
		s.hub.Broadcast(Message{Session: session, Type: e.Type, Data: e.Data, Time: now})
	}
}

// SetSnapshot replaces the state served on /snapshot.
func (s *Server) SetSnapshot(snap sim.Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.For("telemetry").WithField("addr", s.Addr).Info("telemetry listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.hub.Close()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.For("telemetry").WithError(err).Warn("websocket upgrade")
		return
	}

	c := &client{id: uuid.NewString(), hub: s.hub, conn: conn}
	c.send = s.hub.Register(c.id)
	logger.For("telemetry").WithFields(logrus.Fields{
		"client": c.id,
		"remote": r.RemoteAddr,
	}).Info("spectator connected")

	go c.writePump()
	go c.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":      "ok",
		"uptime":      time.Since(s.started).Round(time.Second).String(),
		"subscribers": s.hub.SubscriberCount(),
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	snap := s.latest
	s.mu.RUnlock()
	writeJSON(w, snap)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.For("telemetry").WithError(err).Warn("encode response")
	}
}

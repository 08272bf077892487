// Package server exposes the citizen dashboard API: login, synthetic metric
// views, ward rankings, rewards, and a websocket feed for live updates.
package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/adityab24840/SwachItHackathon/internal/config"
	"github.com/adityab24840/SwachItHackathon/internal/store"
)

type session struct {
	userID   int
	username string
}

type Server struct {
	cfg      config.Config
	store    *store.Store
	router   *mux.Router
	hub      *Hub
	upgrader websocket.Upgrader
	log      *zap.SugaredLogger

	mu       sync.Mutex
	sessions map[string]session
}

func New(cfg config.Config, st *store.Store, log *zap.SugaredLogger) *Server {
	s := &Server{
		cfg:    cfg,
		store:  st,
		router: mux.NewRouter(),
		hub:    newHub(log),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log:      log,
		sessions: make(map[string]session),
	}

	s.setupRoutes()
	go s.hub.run()

	return s
}

// Router returns the HTTP handler for the full API surface.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", s.handleLogin).Methods("POST")
	api.HandleFunc("/logout", s.handleLogout).Methods("POST")
	api.HandleFunc("/user", s.handleGetUser).Methods("GET")
	api.HandleFunc("/dashboard", s.handleDashboard).Methods("GET")
	api.HandleFunc("/metrics", s.handleMetrics).Methods("GET")
	api.HandleFunc("/wards", s.handleWards).Methods("GET")
	api.HandleFunc("/rewards", s.handleRewards).Methods("GET")
	api.HandleFunc("/calendar", s.handleCalendar).Methods("GET")
	api.HandleFunc("/complaints", s.handleGetComplaints).Methods("GET")
	api.HandleFunc("/complaints", s.handleReportComplaint).Methods("POST")

	s.router.HandleFunc("/ws", s.handleWebSocket)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorw("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

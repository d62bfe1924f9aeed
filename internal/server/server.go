package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// #region server
// Server exposes the engine over a WebSocket endpoint.
type Server struct {
	hub *Hub
}

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// NewServer wires a handler into a fresh hub.
func NewServer(handler EventHandler) *Server {
	return &Server{hub: NewHub(handler)}
}

// Hub returns the server's hub, for broadcasts from schedulers.
func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SERVE] upgrade failed: %v", err)
		return
	}
	client := &Client{
		conn: conn,
		hub:  s.hub,
		send: make(chan Message, 256),
	}
	client.hub.register <- client
	go client.writeLoop()
	go client.readLoop()
}

// Listen starts the hub and serves the WebSocket endpoint at /ws. Blocking.
func (s *Server) Listen(addr string) error {
	go s.hub.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.wsHandler)

	log.Printf("[SERVE] listening on ws://%s/ws", addr)
	return http.ListenAndServe(addr, mux)
}
// #endregion server

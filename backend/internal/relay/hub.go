package relay

import (
	"github.com/gorilla/websocket"

	"github.com/quibble-tools/quibble/common/logger"
)

// Hub tracks connected page contexts and fans messages out to them.
// Sends are fire-and-forget; a failed client is dropped and left to
// reconnect on its own.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
	}
}

func (s *Hub) Run() {
	for {
		select {
		case client := <-s.register:
			s.clients[client] = true
			logger.Debug.Printf("Relay client registered (%d connected)", len(s.clients))
		case client := <-s.unregister:
			if _, found := s.clients[client]; found {
				delete(s.clients, client)
				client.Close()
			}
			logger.Debug.Printf("Relay client unregistered (%d connected)", len(s.clients))
		case message := <-s.broadcast:
			for client := range s.clients {
				if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
					logger.Warn.Print("Dropping relay client after write error ", err)
					delete(s.clients, client)
					client.Close()
				}
			}
		case <-s.done:
			for client := range s.clients {
				client.Close()
			}
			return
		}
	}
}

func (s *Hub) Register(client *websocket.Conn) {
	s.register <- client
}

func (s *Hub) Unregister(client *websocket.Conn) {
	s.unregister <- client
}

func (s *Hub) Broadcast(message []byte) {
	s.broadcast <- message
}

func (s *Hub) Stop() {
	close(s.done)
}

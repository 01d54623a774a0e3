package relay

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/quibble-tools/quibble/api"
	"github.com/quibble-tools/quibble/common/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Local single-user daemon, everything runs on loopback
		return true
	},
}

// Server is the panel side of the page-panel channel. Page contexts
// connect over a websocket, report their viewport, and receive
// overlay control messages back.
type Server struct {
	sender         api.Sender
	overlayService api.OverlayService
	hub            *Hub
	server         *http.Server
}

func NewServer(sender api.Sender, overlayService api.OverlayService) *Server {
	return &Server{
		sender:         sender,
		overlayService: overlayService,
		hub:            NewHub(),
	}
}

func (s *Server) Start(port int) {
	router := chi.NewRouter()
	router.Get("/ws", s.handleConnection)
	router.Get("/healthz", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	s.server = &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: router,
	}

	go s.hub.Run()
	go func() {
		logger.Info.Printf("Relay server listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error.Print("Relay server stopped ", err)
		}
	}()
}

func (s *Server) handleConnection(writer http.ResponseWriter, request *http.Request) {
	connection, err := upgrader.Upgrade(writer, request, nil)
	if err != nil {
		logger.Error.Print("Could not upgrade relay connection ", err)
		return
	}

	s.hub.Register(connection)

	go func() {
		defer s.hub.Unregister(connection)
		for {
			_, raw, err := connection.ReadMessage()
			if err != nil {
				logger.Debug.Print("Relay connection closed ", err)
				return
			}
			s.dispatch(raw)
		}
	}()
}

func (s *Server) dispatch(raw []byte) {
	message, err := DecodeMessage(raw)
	if err != nil {
		logger.Warn.Print("Discarding relay message ", err)
		return
	}

	switch message := message.(type) {
	case *ViewportMessage:
		s.sender.SendCommandToTopic(api.ViewportChanged, &api.ViewportReportCommand{
			Width:   message.Width,
			PageUrl: message.PageUrl,
		})
	case *ToggleOverlayMessage:
		s.overlayService.ToggleOverlay(&api.ToggleOverlayCommand{Visible: message.Visible})
	case *TransparencyMessage:
		s.overlayService.SetTransparency(&api.TransparencyCommand{Transparency: message.Transparency})
	case *GetScreenWidthMessage:
		s.RequestScreenWidth()
	}
}

// OnOverlayStateChanged pushes the new overlay state to every page
// context.
func (s *Server) OnOverlayStateChanged(command *api.OverlayStateCommand) {
	if message, err := EncodeToggleOverlay(command.Visible); err == nil {
		s.hub.Broadcast(message)
	}
	if message, err := EncodeTransparency(command.Transparency); err == nil {
		s.hub.Broadcast(message)
	}
}

// RequestScreenWidth asks connected pages to re-report their width.
func (s *Server) RequestScreenWidth() {
	if message, err := EncodeGetScreenWidth(); err == nil {
		s.hub.Broadcast(message)
	}
}

func (s *Server) Stop() {
	logger.Info.Print("Shutting down relay server")
	s.hub.Stop()
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			logger.Warn.Print("Relay server shutdown ", err)
		}
	}
}

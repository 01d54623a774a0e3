package relay

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/quibble-tools/quibble/common/logger"
)

type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
)

const defaultRetryDelay = time.Second

// Client is the page side of the channel: it keeps one connection to
// the relay server, re-reports the last known viewport on reconnect
// and retries a dropped connection forever with a fixed delay.
type Client struct {
	serverUrl  string
	clientId   string
	retryDelay time.Duration
	onMessage  func(message interface{})

	mux         sync.Mutex
	conn        *websocket.Conn
	state       ConnectionState
	lastWidth   int
	lastPageUrl string
	closed      bool
	// Only one connectLoop may run; the caller that sets this owns it
	looping bool
}

func NewClient(serverUrl string, onMessage func(message interface{})) *Client {
	return &Client{
		serverUrl:  serverUrl,
		clientId:   uuid.NewString(),
		retryDelay: defaultRetryDelay,
		onMessage:  onMessage,
	}
}

func (s *Client) Connect() {
	s.mux.Lock()
	if s.closed || s.looping {
		s.mux.Unlock()
		return
	}
	s.looping = true
	s.state = Connecting
	s.mux.Unlock()

	go s.connectLoop()
}

func (s *Client) connectLoop() {
	for {
		s.mux.Lock()
		if s.closed {
			s.looping = false
			s.mux.Unlock()
			return
		}
		s.mux.Unlock()

		conn, _, err := websocket.DefaultDialer.Dial(s.serverUrl, nil)
		if err != nil {
			logger.Debug.Printf("Relay connect failed, retrying in %s: %s", s.retryDelay, err)
			time.Sleep(s.retryDelay)
			continue
		}

		s.mux.Lock()
		s.conn = conn
		s.state = Connected
		width, pageUrl := s.lastWidth, s.lastPageUrl
		s.mux.Unlock()

		logger.Info.Printf("Relay client %s connected to %s", s.clientId, s.serverUrl)

		// Re-report on (re)connect so the panel side catches up
		if width > 0 {
			s.ReportWidth(width, pageUrl)
		}

		s.readLoop(conn)

		s.mux.Lock()
		if s.closed {
			s.looping = false
			s.mux.Unlock()
			return
		}
		s.conn = nil
		s.state = Connecting
		s.mux.Unlock()

		logger.Debug.Printf("Relay connection dropped, reconnecting in %s", s.retryDelay)
		time.Sleep(s.retryDelay)
	}
}

func (s *Client) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		message, err := DecodeMessage(raw)
		if err != nil {
			logger.Warn.Print("Discarding relay message ", err)
			continue
		}
		if s.onMessage != nil {
			s.onMessage(message)
		}
	}
}

// ReportWidth sends a viewport report. Fire-and-forget: a send on a
// dead connection just marks it for reconnect.
func (s *Client) ReportWidth(width int, pageUrl string) {
	s.mux.Lock()
	s.lastWidth = width
	s.lastPageUrl = pageUrl
	conn := s.conn
	connected := s.state == Connected
	s.mux.Unlock()

	if !connected || conn == nil {
		s.Connect()
		return
	}

	raw, err := EncodeViewportReport(width, pageUrl)
	if err != nil {
		logger.Error.Print("Could not encode viewport report ", err)
		return
	}

	if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		logger.Debug.Print("Viewport report failed, reconnecting ", err)
		s.mux.Lock()
		s.conn = nil
		s.state = Disconnected
		s.mux.Unlock()
		conn.Close()
		s.Connect()
	}
}

func (s *Client) State() ConnectionState {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.state
}

func (s *Client) Close() {
	s.mux.Lock()
	s.closed = true
	conn := s.conn
	s.conn = nil
	s.state = Disconnected
	s.mux.Unlock()

	if conn != nil {
		conn.Close()
	}
}

package relay

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quibble-tools/quibble/api"
	"github.com/quibble-tools/quibble/common/event"
)

type overlayServiceStub struct {
	toggles        chan bool
	transparencies chan int

	api.OverlayService
}

func newOverlayServiceStub() *overlayServiceStub {
	return &overlayServiceStub{
		toggles:        make(chan bool, 1),
		transparencies: make(chan int, 1),
	}
}

func (s *overlayServiceStub) ToggleOverlay(command *api.ToggleOverlayCommand) {
	s.toggles <- command.Visible
}

func (s *overlayServiceStub) SetTransparency(command *api.TransparencyCommand) {
	s.transparencies <- command.Transparency
}

type serverFixture struct {
	sut     *Server
	broker  *event.Broker
	overlay *overlayServiceStub
	http    *httptest.Server
}

func initServerTest(t *testing.T) *serverFixture {
	broker := event.InitBus(10)
	overlay := newOverlayServiceStub()
	sut := NewServer(broker, overlay)
	go sut.hub.Run()

	testServer := httptest.NewServer(http.HandlerFunc(sut.handleConnection))
	t.Cleanup(func() {
		testServer.Close()
		sut.hub.Stop()
	})

	return &serverFixture{sut: sut, broker: broker, overlay: overlay, http: testServer}
}

func (f *serverFixture) dial(t *testing.T) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(f.http.URL, "http")
	connection, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.Nil(t, err)
	t.Cleanup(func() { connection.Close() })

	// Registration runs on the hub loop after the handshake
	time.Sleep(50 * time.Millisecond)
	return connection
}

func readMessage(t *testing.T, connection *websocket.Conn) interface{} {
	require.Nil(t, connection.SetReadDeadline(time.Now().Add(time.Second)))
	_, raw, err := connection.ReadMessage()
	require.Nil(t, err)

	decoded, err := DecodeMessage(raw)
	require.Nil(t, err)
	return decoded
}

func TestServer_ViewportReport(t *testing.T) {
	a := assert.New(t)
	fixture := initServerTest(t)

	reports := make(chan *api.ViewportReportCommand, 1)
	fixture.broker.Subscribe(api.ViewportChanged, func(command *api.ViewportReportCommand) {
		reports <- command
	})

	connection := fixture.dial(t)
	raw, err := EncodeViewportReport(1024, "https://example.com/")
	require.Nil(t, err)
	require.Nil(t, connection.WriteMessage(websocket.TextMessage, raw))

	select {
	case report := <-reports:
		a.Equal(1024, report.Width)
		a.Equal("https://example.com/", report.PageUrl)
	case <-time.After(time.Second):
		t.Fatal("no viewport report received")
	}
}

func TestServer_OverlayControls(t *testing.T) {
	a := assert.New(t)
	fixture := initServerTest(t)
	connection := fixture.dial(t)

	t.Run("Toggle reaches the overlay service", func(t *testing.T) {
		raw, err := EncodeToggleOverlay(false)
		require.Nil(t, err)
		require.Nil(t, connection.WriteMessage(websocket.TextMessage, raw))

		select {
		case visible := <-fixture.overlay.toggles:
			a.False(visible)
		case <-time.After(time.Second):
			t.Fatal("no toggle received")
		}
	})
	t.Run("Transparency reaches the overlay service", func(t *testing.T) {
		raw, err := EncodeTransparency(45)
		require.Nil(t, err)
		require.Nil(t, connection.WriteMessage(websocket.TextMessage, raw))

		select {
		case transparency := <-fixture.overlay.transparencies:
			a.Equal(45, transparency)
		case <-time.After(time.Second):
			t.Fatal("no transparency received")
		}
	})
	t.Run("Malformed message is discarded", func(t *testing.T) {
		require.Nil(t, connection.WriteMessage(websocket.TextMessage, []byte(`{"action": "bogus"}`)))

		raw, err := EncodeTransparency(60)
		require.Nil(t, err)
		require.Nil(t, connection.WriteMessage(websocket.TextMessage, raw))

		select {
		case transparency := <-fixture.overlay.transparencies:
			a.Equal(60, transparency)
		case <-time.After(time.Second):
			t.Fatal("no transparency received")
		}
	})
}

func TestServer_OnOverlayStateChanged(t *testing.T) {
	a := assert.New(t)
	fixture := initServerTest(t)
	connection := fixture.dial(t)

	fixture.sut.OnOverlayStateChanged(&api.OverlayStateCommand{Visible: false, Transparency: 40})

	toggle, ok := readMessage(t, connection).(*ToggleOverlayMessage)
	require.True(t, ok)
	a.False(toggle.Visible)

	transparency, ok := readMessage(t, connection).(*TransparencyMessage)
	require.True(t, ok)
	a.Equal(40, transparency.Transparency)
}

func TestServer_RequestScreenWidth(t *testing.T) {
	a := assert.New(t)
	fixture := initServerTest(t)

	first := fixture.dial(t)
	second := fixture.dial(t)

	fixture.sut.RequestScreenWidth()

	_, ok := readMessage(t, first).(*GetScreenWidthMessage)
	a.True(ok)
	_, ok = readMessage(t, second).(*GetScreenWidthMessage)
	a.True(ok)
}

func TestServer_GetScreenWidthRoundTrip(t *testing.T) {
	a := assert.New(t)
	fixture := initServerTest(t)
	connection := fixture.dial(t)

	raw, err := EncodeGetScreenWidth()
	require.Nil(t, err)
	require.Nil(t, connection.WriteMessage(websocket.TextMessage, raw))

	_, ok := readMessage(t, connection).(*GetScreenWidthMessage)
	a.True(ok)
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/DailyGarden_Go/internal/logger"
	"github.com/osse101/DailyGarden_Go/internal/sse"
)

// Websocket timings
const (
	wsWriteWait    = 10 * time.Second
	wsPongWait     = 60 * time.Second
	wsPingInterval = wsPongWait * 9 / 10
	wsReadLimit    = 512
)

// StreamHandler mirrors the SSE event stream over a websocket. Each event is
// sent as one JSON text message shaped like sse.Event.
type StreamHandler struct {
	hub      *sse.Hub
	snapshot sse.SnapshotFunc
	upgrader websocket.Upgrader
}

// NewStreamHandler creates a websocket stream over hub. snapshot may be nil.
func NewStreamHandler(hub *sse.Hub, snapshot sse.SnapshotFunc) *StreamHandler {
	return &StreamHandler{
		hub:      hub,
		snapshot: snapshot,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWebSocket streams state events until the client goes away
// @Summary Websocket event stream
// @Description Same events as /api/v1/events, one JSON message each. Filter with ?types=a,b
// @Tags events
// @Param types query string false "Comma separated event types"
// @Router /api/v1/ws [get]
func (h *StreamHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var eventTypes []string
	if filter := r.URL.Query().Get("types"); filter != "" {
		eventTypes = strings.Split(filter, ",")
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		log.Warn(ErrMsgUpgradeFailed, "error", err)
		return
	}
	defer conn.Close()

	client := h.hub.Register(eventTypes)
	defer h.hub.Unregister(client.ID)
	log.Info(LogMsgStreamOpened, "client_id", client.ID, "filters", eventTypes)

	// the read pump only watches for close frames and pongs
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(wsReadLimit)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	write := func(ev sse.Event) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(ev); err != nil {
			log.Debug(LogMsgStreamWriteFailed, "client_id", client.ID, "error", err)
			return false
		}
		return true
	}

	connected := sse.Event{
		ID:        client.ID,
		Type:      sse.EventTypeConnected,
		Timestamp: time.Now().Unix(),
		Payload:   sse.ConnectedPayload{ClientID: client.ID, Filters: eventTypes},
	}
	if !write(connected) {
		return
	}
	if h.snapshot != nil {
		for _, ev := range h.snapshot(eventTypes) {
			if !write(ev) {
				return
			}
		}
	}

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			log.Info(LogMsgStreamClosed, "client_id", client.ID)
			return

		case ev, ok := <-client.EventChannel:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
					time.Now().Add(wsWriteWait))
				return
			}
			if !write(ev) {
				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}

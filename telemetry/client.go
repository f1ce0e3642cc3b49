package telemetry

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/milk9111/wavecrawler/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// client is one spectator connection. Spectators only listen; anything they
// send is read and dropped so pongs and close frames are processed.
type client struct {
	id   string
	hub  *Broadcaster
	conn *websocket.Conn
	send chan Message
}

func (c *client) readPump() {
	defer func() {
		c.hub.Unregister(c.id)
		if err := c.conn.Close(); err != nil {
			logger.For("telemetry").WithError(err).Debug("close websocket")
		}
		logger.For("telemetry").WithField("client", c.id).Info("spectator disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.For("telemetry").WithError(err).Warn("set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.For("telemetry").WithError(err).Warn("websocket read")
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			logger.For("telemetry").WithError(err).Debug("close websocket in writePump")
		}
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.For("telemetry").WithError(err).Warn("set write deadline")
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.For("telemetry").WithError(err).Debug("write message")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.For("telemetry").WithError(err).Warn("set ping write deadline")
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

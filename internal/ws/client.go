package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// generous enough for a max-size submission plus JSON escaping
	maxMessageSize = 256 * 1024

	sendBufferSize = 64
)

// Client is one live websocket connection. The read pump feeds inbound
// frames to the server's dispatcher; the write pump owns all writes so the
// connection is never written concurrently.
type Client struct {
	sessionID string
	conn      *websocket.Conn
	server    *WSServer
	send      chan []byte
}

func newClient(sessionID string, conn *websocket.Conn, server *WSServer) *Client {
	return &Client{
		sessionID: sessionID,
		conn:      conn,
		server:    server,
		send:      make(chan []byte, sendBufferSize),
	}
}

// readPump reads frames until the connection dies, then triggers the
// session teardown.
func (c *Client) readPump() {
	defer func() {
		c.server.disconnect(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.server.logger.Warn("Websocket read error", "sessionId", c.sessionID, "error", err)
			}
			return
		}
		c.server.dispatch(c.sessionID, message)
	}
}

// writePump writes outbound frames and keepalive pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

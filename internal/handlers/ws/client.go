package ws

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong from the peer
	pongWait = 60 * time.Second

	// Send pings with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Largest inbound message accepted
	maxMessageSize = 4096

	// Outbound messages buffered per connection
	sendBuffer = 64

	// Time allowed for one inbound message to be handled
	requestTimeout = 10 * time.Second
)

// Client is one player's connection to one game
type Client struct {
	conn       *websocket.Conn
	hub        *Hub
	handler    *Handler
	gameID     string
	playerID   string
	playerName string

	// send is drained by writeLoop and closed by the hub on unregister
	send chan *Outbound

	closeOnce sync.Once
}

func newClient(conn *websocket.Conn, handler *Handler, gameID, playerID, playerName string) *Client {
	return &Client{
		conn:       conn,
		hub:        handler.hub,
		handler:    handler,
		gameID:     gameID,
		playerID:   playerID,
		playerName: playerName,
		send:       make(chan *Outbound, sendBuffer),
	}
}

// close drops the network connection; readLoop then unregisters the client
func (c *Client) close() {
	c.closeOnce.Do(func() {
		if c.conn != nil {
			c.conn.Close()
		}
	})
}

func (c *Client) readLoop() {
	defer func() {
		c.hub.unregister(c)
		c.close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Inbound
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.handler.logger.Warn("unexpected close", "game_id", c.gameID, "player_id", c.playerID, "error", err)
			}
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		if reply := c.handler.dispatch(ctx, c, &msg); reply != nil {
			c.hub.Send(c, reply)
		}
		cancel()
	}
}

func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.handler.logger.Debug("write failed", "game_id", c.gameID, "player_id", c.playerID, "error", err)
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

package web

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

type Client struct {
	mu       sync.RWMutex
	hub      *hub
	conn     *websocket.Conn
	Send     chan []byte
	ID       uint8
	Metadata struct {
		RemoteAddr string
		UserAgent  string
		Username   string
	}
	avgLatency  atomic.Uint32
	connectedAt time.Time
}

// ReadPump applies the settings sent by the client until the
// connection is closed.
func (c *Client) ReadPump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) == 0 {
			continue
		}

		switch message[0] {
		case System:
			if len(message) < 3 {
				continue
			}
			if message[1] == RegisterUsername {
				c.mu.Lock()
				c.Metadata.Username = string(message[2:])
				c.mu.Unlock()

				desc := c.describe()
				c.hub.publish(append([]byte{ClientInfo, RegisterUsername}, desc...), nil)
				continue
			}
			if c.hub.apply(message[1], message[2]) {
				c.hub.publish([]byte{ClientInfo, message[1], message[2]}, c)
			}
		case KeepAlive:
		case Closing: // websocket client request close
			return
		}
	}
}

// WritePump writes queued messages to the connection, sampling its
// round trip time after every write.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.Send {
		// try to write message to client
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			return
		}

		// update average latency
		tcp, ok := c.conn.UnderlyingConn().(*net.TCPConn)
		if !ok {
			continue
		}
		rtt, err := roundTrip(tcp)
		if err != nil {
			continue
		}
		c.avgLatency.Store((c.avgLatency.Load()*9 + uint32(rtt)) / 10)
	}

	// the hub closed the connection
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// trySend queues data without blocking, reporting whether it was queued.
func (c *Client) trySend(data []byte) bool {
	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}

// describe returns the client's entry in the client list.
func (c *Client) describe() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var data []byte
	data = append(data, c.Metadata.RemoteAddr...)
	data = append(data, 0)
	data = append(data, c.Metadata.UserAgent...)
	data = append(data, 0)
	data = append(data, c.Metadata.Username...)
	data = append(data, 0)
	data = append(data, c.ID)
	data = append(data, '\n')
	return data
}

package web

import (
	"encoding/binary"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/pocketboy/internal/types"
	"github.com/thelolagemann/pocketboy/pkg/log"
)

// settings are the stream settings shared by every client. Any client
// may change them.
type settings struct {
	compression   bool
	quality       int
	framePatching bool
	patchRatio    int
	frameSkipping bool
}

type message struct {
	data   []byte
	except *Client
}

type hub struct {
	clients map[*Client]bool
	player  *Player
	log     log.Logger

	broadcast            chan message
	register, unregister chan *Client
	done                 chan struct{}

	settings  settings
	currentID uint8

	mu sync.Mutex
}

func newHub(p *Player, s settings, l log.Logger) *hub {
	return &hub{
		clients:    make(map[*Client]bool),
		player:     p,
		log:        l,
		broadcast:  make(chan message, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		settings:   s,
	}
}

// handler returns the http handler upgrading client connections.
func (w *hub) handler() http.Handler {
	return http.HandlerFunc(func(wr http.ResponseWriter, r *http.Request) {
		wr.Header().Set("Access-Control-Allow-Origin", "*")

		// upgrade the connection to a websocket connection
		conn, err := upgrader.Upgrade(wr, r, nil)
		if err != nil {
			w.log.Warnf("web: upgrading %s: %v", r.RemoteAddr, err)
			return
		}

		c := w.newClient(conn, r)
		select {
		case w.register <- c:
		case <-w.done:
			conn.Close()
			return
		}

		// spawn read/write pumps
		go c.ReadPump()
		go c.WritePump()
	})
}

// run owns the client list until stop is called.
func (w *hub) run() {
	t := time.NewTicker(time.Second)
	defer t.Stop()

	for {
		select {
		case <-w.done:
			for c := range w.clients {
				delete(w.clients, c)
				close(c.Send)
			}
			return
		case c := <-w.register:
			w.clients[c] = true
			w.welcome(c)
			w.log.Infof("web: client %d connected from %s", c.ID, c.Metadata.RemoteAddr)
		case c := <-w.unregister:
			if _, ok := w.clients[c]; !ok {
				continue
			}
			delete(w.clients, c)
			close(c.Send)
			w.send(message{data: []byte{ClientClosing, c.ID}})
			w.log.Infof("web: client %d disconnected after %s", c.ID, time.Since(c.connectedAt).Round(time.Second))
		case msg := <-w.broadcast:
			w.send(msg)
		case <-t.C:
			// periodic latency updates
			data := []byte{ServerInfo}
			for c := range w.clients {
				data = append(data, c.ID)
				data = binary.LittleEndian.AppendUint16(data, uint16(c.avgLatency.Load()))
			}
			w.send(message{data: data})
		}
	}
}

func (w *hub) stop() {
	close(w.done)
}

// publish queues data for every client but except, which may be nil.
func (w *hub) publish(data []byte, except *Client) {
	select {
	case w.broadcast <- message{data: data, except: except}:
	case <-w.done:
	}
}

// send delivers msg, dropping any client that can't keep up.
func (w *hub) send(msg message) {
	for c := range w.clients {
		if c == msg.except {
			continue
		}
		select {
		case c.Send <- msg.data:
		default:
			close(c.Send)
			delete(w.clients, c)
		}
	}
}

// welcome sends the stream settings, the current frame and caches, and
// the list of connected clients to a newly registered client.
func (w *hub) welcome(c *Client) {
	s := w.current()
	c.trySend([]byte{ClientInfo, ClientStatus, w.info(), uint8(s.quality), uint8(s.patchRatio)})

	msgs, err := w.player.sync()
	if err != nil {
		w.log.Errorf("%v", err)
	}
	for _, m := range msgs {
		c.trySend(m)
	}

	var data []byte
	for cl := range w.clients {
		if c == cl {
			continue // skip self
		}
		data = append(data, cl.describe()...)
	}
	if len(data) > 0 {
		// remove last newline to avoid issues with JS
		data = data[:len(data)-1]
	}
	c.trySend(append([]byte{ClientListSync}, data...))
}

// info returns a byte of information containing the various
// hub settings. The byte is constructed as follows:
//
//	Bit 0: Emulator running
//	Bit 2: Compression enabled
//	Bit 3: Frame patching enabled
//	Bit 4: Frame skipping enabled
func (w *hub) info() byte {
	s := w.current()
	info := uint8(types.Bit0)
	if s.compression {
		info |= types.Bit2
	}
	if s.framePatching {
		info |= types.Bit3
	}
	if s.frameSkipping {
		info |= types.Bit4
	}

	return info
}

func (w *hub) current() settings {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.settings
}

// apply updates a setting from a client message, reporting whether
// the event was understood.
func (w *hub) apply(e Event, value byte) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch e {
	case Compression:
		w.settings.compression = value == 1
	case CompressionLevel:
		w.settings.quality = min(int(value), 11)
	case FramePatching:
		w.settings.framePatching = value == 1
	case FramePatchingRatio:
		w.settings.patchRatio = min(int(value), 100)
	case FrameSkipping:
		w.settings.frameSkipping = value == 1
	default:
		return false
	}
	return true
}

// newClient creates a new client for the hub
func (w *hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.currentID++

	c := &Client{
		hub:         w,
		conn:        conn,
		Send:        make(chan []byte, 256),
		ID:          w.currentID,
		connectedAt: time.Now(),
	}
	c.Metadata.RemoteAddr = r.RemoteAddr
	c.Metadata.UserAgent = r.Header.Get("User-Agent")
	return c
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

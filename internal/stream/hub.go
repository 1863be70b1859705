// Package stream pushes the frames of an evaluated rod to websocket
// clients at a fixed rate.
package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/san-kum/heatrod/internal/experiment"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

const (
	sendBuffer = 16
	writeWait  = time.Second
)

// Frame is one time sample as sent on the wire.
type Frame struct {
	Index       int       `json:"index"`
	Time        float64   `json:"time"`
	Temperature []float64 `json:"temperature"`
	Flux        []float64 `json:"flux"`
}

// FrameAt extracts time sample j of res.
func FrameAt(res *experiment.Result, j int) Frame {
	return Frame{
		Index:       j,
		Time:        res.Times[j],
		Temperature: mat.Col(nil, j, res.Temperature),
		Flux:        mat.Col(nil, j, res.Flux),
	}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub broadcasts frames to every connected client. Clients only listen;
// anything they send is discarded. A client that falls sendBuffer frames
// behind is dropped.
type Hub struct {
	res      *experiment.Result
	interval time.Duration
	loop     bool
	upgrader websocket.Upgrader

	register   chan *client
	unregister chan *client
	done       chan struct{}
	clients    map[*client]struct{}
	count      atomic.Int32
}

func NewHub(res *experiment.Result, interval time.Duration, loop bool) *Hub {
	return &Hub{
		res:      res,
		interval: interval,
		loop:     loop,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		clients:    make(map[*client]struct{}),
	}
}

// Clients reports the number of connected clients.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Run broadcasts until ctx is done. Without loop the hub goes quiet after
// the last frame. Run must be called at most once.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	defer close(h.done)

	next := 0
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Add(1)
			log.WithField("clients", len(h.clients)).Info("client connected")

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				log.WithField("clients", len(h.clients)).Info("client disconnected")
			}

		case <-ticker.C:
			if next >= len(h.res.Times) {
				if !h.loop {
					continue
				}
				next = 0
			}
			if len(h.clients) == 0 {
				continue
			}
			data, err := json.Marshal(FrameAt(h.res, next))
			if err != nil {
				log.WithError(err).Error("encode frame")
				continue
			}
			next++
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					h.drop(c)
					log.Warn("dropped slow client")
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	h.count.Add(-1)
	close(c.send)
}

// ServeHTTP upgrades the request and registers the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	case <-r.Context().Done():
		conn.Close()
		return
	}

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}

func (h *Hub) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

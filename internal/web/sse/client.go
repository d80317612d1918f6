package sse

import (
	"io"
	"net/http"
	"time"
)

const (
	keepalivePeriod = 30 * time.Second
	sendBufferSize  = 256

	// Milliseconds the browser waits before reconnecting a dropped stream
	reconnectDelayMS = "3000"
)

// Client is one open event stream on a game's hub
type Client struct {
	hub         *Hub
	viewer      string // remote address, for logging only
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a client for viewer. It is not registered until ServeSSE
// runs.
func NewClient(hub *Hub, viewer string) *Client {
	return &Client{
		hub:         hub,
		viewer:      viewer,
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// ServeSSE streams hub events to a single viewer until the request ends or
// the hub closes
func ServeSSE(w http.ResponseWriter, r *http.Request, hub *Hub, viewer string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("X-Accel-Buffering", "no") // nginx

	client := NewClient(hub, viewer)
	hub.Register(client)
	defer hub.Unregister(client)

	if !writeFrame(w, flusher, "retry: "+reconnectDelayMS+"\n\n"+
		"event: connected\ndata: {\"status\":\"connected\"}\n\n") {
		return
	}

	client.pump(w, flusher, r.Context().Done())
}

// pump copies queued messages to w, with a keepalive comment when idle, until
// done fires, the hub closes the send channel or a write fails
func (c *Client) pump(w io.Writer, flusher http.Flusher, done <-chan struct{}) {
	keepalive := time.NewTicker(keepalivePeriod)
	defer keepalive.Stop()

	for {
		var frame string
		select {
		case message, open := <-c.send:
			if !open {
				return
			}
			frame = string(message)
		case <-keepalive.C:
			frame = ": keepalive\n\n"
		case <-done:
			return
		}
		if !writeFrame(w, flusher, frame) {
			return
		}
	}
}

func writeFrame(w io.Writer, flusher http.Flusher, frame string) bool {
	if _, err := io.WriteString(w, frame); err != nil {
		return false
	}
	flusher.Flush()
	return true
}

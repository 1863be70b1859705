package stream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Meta describes the stream so clients can label frames.
type Meta struct {
	Name     string    `json:"name"`
	Boundary string    `json:"boundary"`
	Length   float64   `json:"length"`
	Space    []float64 `json:"space"`
	Frames   int       `json:"frames"`
}

// Handler serves the websocket at /ws and the stream description at /meta.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/meta", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Meta{
			Name:     h.res.Name,
			Boundary: h.res.Boundary.String(),
			Length:   h.res.Length,
			Space:    h.res.Space,
			Frames:   len(h.res.Times),
		})
	})
	return mux
}

// ListenAndServe runs the hub and an HTTP server on addr until ctx is
// done.
func ListenAndServe(ctx context.Context, addr string, h *Hub) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler()}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go h.Run(ctx)

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("streaming")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

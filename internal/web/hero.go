package web

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/pinecoastbbq/pinecoast/internal/rotator"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// heroMessage is pushed to the browser whenever the hero image changes.
type heroMessage struct {
	Index int    `json:"index"`
	Image string `json:"image"`
}

// handleHero runs one rotator for the lifetime of the connection: it starts
// when the page connects and stops when it goes away.
func (s *Site) handleHero(w http.ResponseWriter, r *http.Request) {
	rot, err := rotator.New(s.opts.HeroImages, s.opts.HeroPeriod)
	if err != nil {
		log.Printf("web: hero socket: %v", err)
		http.Error(w, "no hero images configured", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reads only detect the close; the page never sends anything.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("web: hero socket read: %v", err)
				}
				return
			}
		}
	}()

	if err := conn.WriteJSON(heroMessage{Index: rot.Index(), Image: rot.Current()}); err != nil {
		return
	}

	rot.Start(ctx)
	defer rot.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case idx := <-rot.Changes():
			msg := heroMessage{Index: idx, Image: rot.Image(idx)}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	}
}

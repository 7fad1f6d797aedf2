package viewer

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
)

// watchManifest watches the manifest file and, on change, reloads it
// and tells connected pages to refresh. URL sources cannot be watched.
func (s *Server) watchManifest() error {
	if strings.HasPrefix(s.cfg.Source, "http://") || strings.HasPrefix(s.cfg.Source, "https://") {
		return fmt.Errorf("manifest %s is a URL", s.cfg.Source)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory: editors replace files rather than write in
	// place, which drops a watch on the file itself.
	dir := filepath.Dir(s.cfg.Source)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Base(s.cfg.Source)
	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				s.reloadManifest()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("viewer: watcher: %v", err)
			}
		}
	}()
	return nil
}

func (s *Server) reloadManifest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := s.loader.Load(ctx, s.cfg.Source)
	if err != nil {
		log.Printf("viewer: manifest reload failed: %v", err)
	} else {
		log.Printf("viewer: manifest reloaded (%d entries)", len(entries))
	}
	s.setManifest(entries, err)
	s.hub.broadcast()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks connected viewer pages and pushes reload events.
type reloadHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newReloadHub() *reloadHub {
	return &reloadHub{conns: make(map[*websocket.Conn]bool)}
}

func (h *reloadHub) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("viewer: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	// The page never sends messages; read until the connection closes
	// so we notice disconnects.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *reloadHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *reloadHub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"reload"}`)); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

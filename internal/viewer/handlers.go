package viewer

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/renlliang3/astrobase/internal/manifest"
)

// pageData is passed to the viewer page template.
type pageData struct {
	Title      string
	Source     string
	LiveReload bool
	HasAbout   bool
}

var page = template.Must(template.New("viewer").Parse(pageTemplate))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:      s.cfg.Title,
		Source:     s.cfg.Source,
		LiveReload: s.cfg.LiveReload,
		HasAbout:   s.cfg.AboutFile != "",
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		log.Printf("viewer: rendering page: %v", err)
	}
}

// manifestResponse is the JSON the page fetches on load and on reload.
type manifestResponse struct {
	Checkplots manifest.Manifest `json:"checkplots"`
	NFiles     int               `json:"nfiles"`
}

// errorResponse is returned when the manifest could not be loaded. The
// page renders the error banner and keeps navigation disabled.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	entries, loadErr := s.Manifest()

	w.Header().Set("Content-Type", "application/json")
	if loadErr != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(errorResponse{
			Error:   string(manifest.Kind(loadErr)),
			Message: loadErr.Error(),
		})
		return
	}

	if entries == nil {
		entries = manifest.Manifest{}
	}
	json.NewEncoder(w).Encode(manifestResponse{
		Checkplots: entries,
		NFiles:     len(entries),
	})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	content, err := renderAbout(s.cfg.AboutFile)
	if err != nil {
		log.Printf("viewer: rendering about page: %v", err)
		http.Error(w, "about page unavailable", http.StatusNotFound)
		return
	}

	data := struct {
		Title   string
		Content template.HTML
	}{Title: s.cfg.Title, Content: content}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := aboutPage.Execute(w, data); err != nil {
		log.Printf("viewer: rendering about page: %v", err)
	}
}

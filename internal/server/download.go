package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

func (s *Server) handleDownloadAudio(w http.ResponseWriter, r *http.Request) {
	s.serveProcessed(w, r, "audio/mpeg", "merged_transcript.mp3")
}

func (s *Server) handleDownloadJSON(w http.ResponseWriter, r *http.Request) {
	s.serveProcessed(w, r, "application/json", "master_plan.json")
}

// serveProcessed returns a previously produced artifact from the processed
// directory. Filenames are reduced to their base name so a crafted path can
// never escape the directory.
func (s *Server) serveProcessed(w http.ResponseWriter, r *http.Request, contentType, downloadName string) {
	name := filepath.Base(r.PathValue("filename"))
	path := filepath.Join(s.cfg.Paths.Processed, name)

	if _, err := os.Stat(path); err != nil {
		s.respond(w, http.StatusNotFound, map[string]interface{}{
			"error": "File not found",
		})
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	http.ServeFile(w, r, path)
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
)

func (s *Server) respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(context.Background(), "write response: %v", err)
	}
}

// fail maps any pipeline error to the generic 500 shape. The process never
// dies on a bad request.
func (s *Server) fail(ctx context.Context, w http.ResponseWriter, err error) {
	s.logger.Error(ctx, "request failed: %v", err)
	s.respond(w, http.StatusInternalServerError, map[string]interface{}{
		"status":  "error",
		"message": err.Error(),
	})
}

// cleanupScratch removes a per-request scratch directory. Best effort only: a
// leftover directory is preferable to failing a finished request.
func (s *Server) cleanupScratch(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		s.logger.Warn(ctx, "cleanup scratch dir %s: %v", dir, err)
	}
}

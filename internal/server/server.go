// Package server exposes the merge/transcribe/plan pipeline over HTTP. The
// handlers are glue: all heavy lifting happens in the collaborator packages
// and on the remote model.
package server

import (
	"net/http"

	"slidecast/internal/config"
	"slidecast/internal/logger"
	"slidecast/internal/media"
	"slidecast/internal/planner"
	"slidecast/internal/transcribe"
)

// maxUploadBytes bounds one multipart request in memory/disk.
const maxUploadBytes = 512 << 20

type Server struct {
	cfg         *config.Config
	logger      logger.Logger
	merger      *media.Merger
	transcriber transcribe.Transcriber
	planner     planner.Planner
}

// New wires the HTTP surface to its collaborators.
func New(cfg *config.Config, log logger.Logger, merger *media.Merger, tr transcribe.Transcriber, pl planner.Planner) *Server {
	return &Server{
		cfg:         cfg,
		logger:      log,
		merger:      merger,
		transcriber: tr,
		planner:     pl,
	}
}

// Routes builds the request mux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /process/", s.handleProcess)
	mux.HandleFunc("POST /generate-timeline/", s.handleGenerateTimeline)
	mux.HandleFunc("GET /download/{filename}", s.handleDownloadAudio)
	mux.HandleFunc("GET /download-json/{filename}", s.handleDownloadJSON)

	fs := http.FileServer(http.Dir(s.cfg.Paths.Static))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))

	return mux
}

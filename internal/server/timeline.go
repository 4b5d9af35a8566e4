package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"slidecast/internal/extract"
)

// handleGenerateTimeline takes a transcript JSON file and a slide document
// and returns the model-planned timeline.
func (s *Server) handleGenerateTimeline(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.fail(ctx, w, fmt.Errorf("parse upload: %w", err))
		return
	}

	transcriptBytes, _, err := readFormFile(r, "transcription_json")
	if err != nil {
		s.fail(ctx, w, err)
		return
	}
	docBytes, docName, err := readFormFile(r, "slide_doc")
	if err != nil {
		s.fail(ctx, w, err)
		return
	}

	session := uuid.NewString()
	s.logger.Info(ctx, "[%s] extracting text from %s", session, docName)

	slideText, err := extract.Text(docBytes, docName)
	if err != nil {
		s.fail(ctx, w, err)
		return
	}
	s.logger.Debug(ctx, "[%s] extracted %d characters from slide doc", session, len(slideText))

	result, err := s.planner.Plan(ctx, transcriptBytes, slideText)
	if err != nil {
		s.fail(ctx, w, err)
		return
	}

	planName := session + "_master_plan.json"
	if err := writeIndentedJSON(filepath.Join(s.cfg.Paths.Processed, planName), result.Raw); err != nil {
		s.fail(ctx, w, err)
		return
	}

	body := map[string]interface{}{
		"status":       "success",
		"download_url": "/download-json/" + planName,
		"clip_count":   len(result.Plan.Clips),
		"plan":         result.Raw,
		"token_usage":  result.Usage,
	}
	if len(result.Warnings) > 0 {
		body["warnings"] = result.Warnings
	}
	s.respond(w, http.StatusOK, body)
}

func readFormFile(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", fmt.Errorf("missing form file %q: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("read form file %q: %w", field, err)
	}
	return data, header.Filename, nil
}

func writeIndentedJSON(path string, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indent plan JSON: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// handleProcess accepts multiple audio uploads plus a comma-separated
// file_order, merges them in that order and returns the transcription.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	// Once a remote call starts there is no aborting it; a client disconnect
	// must not cancel in-flight work.
	ctx := context.WithoutCancel(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.fail(ctx, w, fmt.Errorf("parse upload: %w", err))
		return
	}

	session := uuid.NewString()
	sessionDir := filepath.Join(s.cfg.Paths.Uploads, session)
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		s.fail(ctx, w, fmt.Errorf("create scratch dir: %w", err))
		return
	}
	defer s.cleanupScratch(ctx, sessionDir)

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		s.fail(ctx, w, errors.New("no audio files uploaded"))
		return
	}

	saved := make(map[string]string, len(headers))
	for _, fh := range headers {
		name := filepath.Base(fh.Filename)
		dst := filepath.Join(sessionDir, name)
		if err := saveUpload(fh, dst); err != nil {
			s.fail(ctx, w, err)
			return
		}
		saved[name] = dst
	}

	ordered := orderPaths(saved, r.FormValue("file_order"))
	if len(ordered) == 0 {
		s.fail(ctx, w, errors.New("file_order does not match any uploaded file"))
		return
	}

	s.logger.Info(ctx, "[%s] merging %d files", session, len(ordered))
	mergedName := session + "_merged.mp3"
	mergedPath := filepath.Join(s.cfg.Paths.Processed, mergedName)
	if err := s.merger.Merge(ctx, ordered, mergedPath); err != nil {
		s.fail(ctx, w, err)
		return
	}

	result, err := s.transcriber.Transcribe(ctx, mergedPath)
	if err != nil {
		s.fail(ctx, w, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]interface{}{
		"status":           "success",
		"merged_audio_url": "/download/" + mergedName,
		"transcription":    result.Raw,
		"token_usage":      result.Usage,
	})
}

// orderPaths resolves the comma-separated filename list against the saved
// uploads. Names that match nothing are skipped; merge order is exactly the
// order given.
func orderPaths(saved map[string]string, fileOrder string) []string {
	var ordered []string
	for _, name := range strings.Split(fileOrder, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if path, ok := saved[filepath.Base(name)]; ok {
			ordered = append(ordered, path)
		}
	}
	return ordered
}

func saveUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("save upload %s: %w", fh.Filename, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("save upload %s: %w", fh.Filename, err)
	}
	return nil
}

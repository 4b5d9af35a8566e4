// Package batch handles audio files dropped into the watch inbox: each file
// is transcribed, the transcript JSON is written to the output directory and
// the original audio is moved to the archive.
package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"slidecast/internal/media"
)

// Process transcribes one audio file end to end.
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()
	base := filepath.Base(audioPath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcription: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	info, err := media.Probe(ctx, p.executor, audioPath)
	if err != nil {
		return fmt.Errorf("probe audio: %w", err)
	}
	p.logger.Info(ctx, "Audio: %.1fs, codec %s", info.Duration, info.Codec)

	result, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	outputPath := filepath.Join(p.cfg.Paths.Output, transcriptName(base))
	if err := p.writeTranscript(outputPath, result.Raw); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}

	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive original audio: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Transcription completed successfully!")
	p.logger.Info(ctx, "Output transcript: %s", outputPath)
	if result.Usage != nil {
		p.logger.Info(ctx, "Token usage: %d in / %d out (%s)", result.Usage.Input, result.Usage.Output, result.Usage.Model)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) writeTranscript(path string, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// moveToArchived moves the processed audio out of the inbox so it is not
// picked up again.
func (p *implProcessor) moveToArchived(ctx context.Context, audioPath string) error {
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(audioPath))

	p.logger.Info(ctx, "Archiving: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

func transcriptName(audioName string) string {
	return strings.TrimSuffix(audioName, filepath.Ext(audioName)) + ".json"
}

// Package media concatenates uploaded audio clips with ffmpeg. Concatenation
// order is the order given: downstream word timestamps are relative to
// position in the merged file.
package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"slidecast/internal/logger"
	"slidecast/pkg/executor"
)

// ErrOutputTooSmall means ffmpeg produced an implausibly small file and the
// merge as a whole must be treated as failed.
var ErrOutputTooSmall = errors.New("merge failed: output file is too small")

type Merger struct {
	exec     executor.Executor
	logger   logger.Logger
	bitrate  string
	minBytes int64
}

// NewMerger creates a Merger with a fixed output bitrate and a plausibility
// threshold for the merged file size.
func NewMerger(exec executor.Executor, log logger.Logger, bitrate string, minBytes int64) *Merger {
	if bitrate == "" {
		bitrate = "192k"
	}
	if minBytes <= 0 {
		minBytes = 100
	}
	return &Merger{exec: exec, logger: log, bitrate: bitrate, minBytes: minBytes}
}

// Merge concatenates the given audio files, in order, into a single MP3 at
// outputPath. Zero-length or undecodable inputs are skipped with a warning
// rather than aborting the merge.
func (m *Merger) Merge(ctx context.Context, paths []string, outputPath string) error {
	if len(paths) == 0 {
		return errors.New("no files provided for merging")
	}

	usable := make([]string, 0, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			m.logger.Warn(ctx, "skipping %s: %v", path, err)
			continue
		}
		info, err := os.Stat(abs)
		if err != nil {
			m.logger.Warn(ctx, "skipping %s: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			m.logger.Warn(ctx, "skipping zero-length file: %s", path)
			continue
		}
		if _, err := Probe(ctx, m.exec, abs); err != nil {
			m.logger.Warn(ctx, "skipping undecodable file %s: %v", path, err)
			continue
		}
		usable = append(usable, abs)
	}

	if len(usable) == 0 {
		return errors.New("no usable audio files to merge")
	}

	m.logger.Info(ctx, "merging %d of %d files into %s", len(usable), len(paths), outputPath)

	listPath, err := writeConcatList(usable)
	if err != nil {
		return err
	}
	defer os.Remove(listPath)

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if _, err := m.exec.Execute(ctx, "ffmpeg",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c:a", "libmp3lame",
		"-b:a", m.bitrate,
		"-y",
		absOutput,
	); err != nil {
		return fmt.Errorf("ffmpeg concat: %w", err)
	}

	info, err := os.Stat(absOutput)
	if err != nil {
		return fmt.Errorf("stat merged output: %w", err)
	}
	if info.Size() < m.minBytes {
		return ErrOutputTooSmall
	}

	return nil
}

// writeConcatList stages the ffmpeg concat demuxer list file. Entry order is
// concatenation order.
func writeConcatList(paths []string) (string, error) {
	f, err := os.CreateTemp("", "slidecast-concat-*.txt")
	if err != nil {
		return "", fmt.Errorf("create concat list: %w", err)
	}

	var b strings.Builder
	for _, p := range paths {
		escaped := strings.ReplaceAll(p, "'", `'\''`)
		fmt.Fprintf(&b, "file '%s'\n", escaped)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write concat list: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}

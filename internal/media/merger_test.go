package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slidecast/internal/logger"
)

var testLog = logger.NewWithWriter(io.Discard, "error")

// fakeExecutor answers ffprobe with canned JSON and simulates ffmpeg by
// writing a fixed payload to the output path. The concat list is captured
// during the ffmpeg call because the merger deletes it afterwards.
type fakeExecutor struct {
	probeFail   map[string]bool
	ffmpegBytes []byte
	ffmpegErr   error

	concatEntries []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	switch name {
	case "ffprobe":
		path := args[len(args)-1]
		if f.probeFail[filepath.Base(path)] {
			return "", fmt.Errorf("ffprobe: no decodable stream in %s", path)
		}
		return `{"format":{"duration":"12.5"},"streams":[{"codec_name":"mp3"}]}`, nil
	case "ffmpeg":
		for i, arg := range args {
			if arg == "-i" && i+1 < len(args) {
				if data, err := os.ReadFile(args[i+1]); err == nil {
					f.concatEntries = strings.Split(strings.TrimSpace(string(data)), "\n")
				}
			}
		}
		if f.ffmpegErr != nil {
			return "", f.ffmpegErr
		}
		out := args[len(args)-1]
		return "", os.WriteFile(out, f.ffmpegBytes, 0644)
	}
	return "", fmt.Errorf("unexpected command %s", name)
}

func writeTempAudio(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMergePreservesOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeTempAudio(t, dir, "intro.mp3", 2048)
	b := writeTempAudio(t, dir, "body.mp3", 2048)
	c := writeTempAudio(t, dir, "outro.mp3", 2048)

	exec := &fakeExecutor{ffmpegBytes: make([]byte, 4096)}
	m := NewMerger(exec, testLog, "192k", 100)
	out := filepath.Join(dir, "merged.mp3")
	if err := m.Merge(context.Background(), []string{b, a, c}, out); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if len(exec.concatEntries) != 3 {
		t.Fatalf("concat list has %d entries, want 3: %v", len(exec.concatEntries), exec.concatEntries)
	}
	wantOrder := []string{"body.mp3", "intro.mp3", "outro.mp3"}
	for i, line := range exec.concatEntries {
		if !strings.Contains(line, wantOrder[i]) {
			t.Errorf("concat entry %d = %q, want file %s", i, line, wantOrder[i])
		}
	}
}

func TestMergeSkipsZeroByteFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeTempAudio(t, dir, "intro.mp3", 2048)
	empty := writeTempAudio(t, dir, "silence.mp3", 0)
	b := writeTempAudio(t, dir, "body.mp3", 2048)

	exec := &fakeExecutor{ffmpegBytes: make([]byte, 4096)}
	m := NewMerger(exec, testLog, "192k", 100)
	out := filepath.Join(dir, "merged.mp3")
	if err := m.Merge(context.Background(), []string{a, empty, b}, out); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if len(exec.concatEntries) != 2 {
		t.Fatalf("concat list has %d entries, want 2: %v", len(exec.concatEntries), exec.concatEntries)
	}
	for _, line := range exec.concatEntries {
		if strings.Contains(line, "silence.mp3") {
			t.Error("zero-byte file reached the concat list")
		}
	}
}

func TestMergeSkipsUndecodableFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeTempAudio(t, dir, "intro.mp3", 2048)
	bad := writeTempAudio(t, dir, "broken.mp3", 2048)

	exec := &fakeExecutor{
		ffmpegBytes: make([]byte, 4096),
		probeFail:   map[string]bool{"broken.mp3": true},
	}
	m := NewMerger(exec, testLog, "192k", 100)
	out := filepath.Join(dir, "merged.mp3")
	if err := m.Merge(context.Background(), []string{a, bad}, out); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	for _, line := range exec.concatEntries {
		if strings.Contains(line, "broken.mp3") {
			t.Error("undecodable file reached the concat list")
		}
	}
}

func TestMergeEmptyInput(t *testing.T) {
	m := NewMerger(&fakeExecutor{}, testLog, "192k", 100)
	if err := m.Merge(context.Background(), nil, "out.mp3"); err == nil {
		t.Error("Merge accepted an empty file list")
	}
}

func TestMergeAllInputsUnusable(t *testing.T) {
	dir := t.TempDir()
	empty := writeTempAudio(t, dir, "a.mp3", 0)

	m := NewMerger(&fakeExecutor{}, testLog, "192k", 100)
	err := m.Merge(context.Background(), []string{empty}, filepath.Join(dir, "out.mp3"))
	if err == nil || !strings.Contains(err.Error(), "no usable audio") {
		t.Errorf("err = %v, want no-usable-audio failure", err)
	}
}

func TestMergeOutputTooSmall(t *testing.T) {
	dir := t.TempDir()
	a := writeTempAudio(t, dir, "intro.mp3", 2048)

	exec := &fakeExecutor{ffmpegBytes: []byte("tiny")}
	m := NewMerger(exec, testLog, "192k", 100)
	err := m.Merge(context.Background(), []string{a}, filepath.Join(dir, "out.mp3"))
	if !errors.Is(err, ErrOutputTooSmall) {
		t.Errorf("err = %v, want ErrOutputTooSmall", err)
	}
}

func TestMergeFfmpegFailure(t *testing.T) {
	dir := t.TempDir()
	a := writeTempAudio(t, dir, "intro.mp3", 2048)

	exec := &fakeExecutor{ffmpegErr: errors.New("codec unavailable")}
	m := NewMerger(exec, testLog, "192k", 100)
	err := m.Merge(context.Background(), []string{a}, filepath.Join(dir, "out.mp3"))
	if err == nil || !strings.Contains(err.Error(), "ffmpeg concat") {
		t.Errorf("err = %v, want ffmpeg failure", err)
	}
}

func TestProbe(t *testing.T) {
	exec := &fakeExecutor{}
	info, err := Probe(context.Background(), exec, "clip.mp3")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if info.Duration != 12.5 || info.Codec != "mp3" {
		t.Errorf("info = %+v", info)
	}
}

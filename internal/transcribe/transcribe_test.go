package transcribe

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"google.golang.org/genai"

	"slidecast/internal/llm"
	"slidecast/internal/logger"
)

var testLog = logger.NewWithWriter(io.Discard, "error")

type stubClient struct {
	response  string
	uploadErr error
	genErr    error

	uploadedPath string
	uploadedMIME string
	gotModel     string
	gotParts     []*genai.Part
}

func (s *stubClient) GenerateJSON(ctx context.Context, model string, parts []*genai.Part) ([]byte, *llm.TokenUsage, error) {
	s.gotModel = model
	s.gotParts = parts
	if s.genErr != nil {
		return nil, nil, s.genErr
	}
	return []byte(s.response), &llm.TokenUsage{Input: 7, Output: 3, Model: model}, nil
}

func (s *stubClient) UploadFile(ctx context.Context, path, mimeType string) (*genai.File, error) {
	s.uploadedPath = path
	s.uploadedMIME = mimeType
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return &genai.File{URI: "files/abc123", MIMEType: mimeType}, nil
}

func TestTranscribe(t *testing.T) {
	client := &stubClient{
		response: `{"full_transcript":"hello world","words":[{"word":"hello","start":"00:00.00","end":"00:00.50"},{"word":"world","start":"00:00.51","end":"00:01.00"}]}`,
	}
	tr := New(client, "gemini-flash-latest", testLog)

	result, err := tr.Transcribe(context.Background(), "merged.mp3")
	if err != nil {
		t.Fatal(err)
	}

	if client.uploadedMIME != "audio/mpeg" {
		t.Errorf("upload MIME = %q", client.uploadedMIME)
	}
	if client.gotModel != "gemini-flash-latest" {
		t.Errorf("model = %q", client.gotModel)
	}
	if len(client.gotParts) != 2 {
		t.Fatalf("parts = %d, want 2 (file + prompt)", len(client.gotParts))
	}
	if client.gotParts[0].FileData == nil || client.gotParts[0].FileData.FileURI != "files/abc123" {
		t.Error("first part does not reference the uploaded file")
	}
	if !strings.Contains(client.gotParts[1].Text, "timestamps for every single word") {
		t.Error("prompt text missing from second part")
	}

	if result.Transcript.FullTranscript != "hello world" {
		t.Errorf("full transcript = %q", result.Transcript.FullTranscript)
	}
	if len(result.Transcript.Words) != 2 {
		t.Errorf("words = %d", len(result.Transcript.Words))
	}
	if result.Usage == nil || result.Usage.Input != 7 {
		t.Errorf("usage = %+v", result.Usage)
	}
}

func TestTranscribeUploadFailure(t *testing.T) {
	client := &stubClient{uploadErr: errors.New("upload rejected")}
	tr := New(client, "gemini-flash-latest", testLog)

	if _, err := tr.Transcribe(context.Background(), "merged.mp3"); err == nil {
		t.Fatal("expected upload error")
	}
	if client.gotModel != "" {
		t.Error("generation should not run after a failed upload")
	}
}

func TestTranscribeMIMEByExtension(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"merged.mp3", "audio/mpeg"},
		{"voice.m4a", "audio/mp4"},
		{"raw.WAV", "audio/wav"},
		{"raw.flac", "audio/flac"},
		{"clip.ogg", "audio/ogg"},
		{"clip.aac", "audio/aac"},
		{"mystery.bin", "audio/mpeg"},
	}
	for _, tc := range cases {
		client := &stubClient{
			response: `{"full_transcript":"x","words":[]}`,
		}
		tr := New(client, "m", testLog)
		if _, err := tr.Transcribe(context.Background(), tc.path); err != nil {
			t.Fatalf("Transcribe(%q): %v", tc.path, err)
		}
		if client.uploadedMIME != tc.want {
			t.Errorf("Transcribe(%q) uploaded as %q, want %q", tc.path, client.uploadedMIME, tc.want)
		}
	}
}

func TestTranscribeBadJSON(t *testing.T) {
	client := &stubClient{response: `{"full_transcript": 42}`}
	tr := New(client, "gemini-flash-latest", testLog)

	if _, err := tr.Transcribe(context.Background(), "merged.mp3"); err == nil {
		t.Fatal("expected transcript parse error")
	}
}

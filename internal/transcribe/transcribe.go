package transcribe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"slidecast/internal/transcript"
)

const transcribePrompt = `Listen to this audio. Generate a highly accurate transcription with timestamps for every single word.

Return a JSON object with this exact schema:
{
    "full_transcript": "The complete text of the audio.",
    "words": [
        {"word": "Hello", "start": "00:00.00", "end": "00:00.50"},
        {"word": "world", "start": "00:00.51", "end": "00:01.00"}
    ]
}`

// Transcribe uploads the audio to the Gemini Files API and asks the model for
// a word-timestamped transcript as JSON.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	abs, err := filepath.Abs(audioPath)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "uploading audio for transcription: %s", abs)
	file, err := t.client.UploadFile(ctx, abs, audioMIME(abs))
	if err != nil {
		return nil, fmt.Errorf("upload audio: %w", err)
	}

	t.logger.Info(ctx, "transcribing with %s", t.model)
	parts := []*genai.Part{
		genai.NewPartFromURI(file.URI, file.MIMEType),
		genai.NewPartFromText(transcribePrompt),
	}

	raw, usage, err := t.client.GenerateJSON(ctx, t.model, parts)
	if err != nil {
		return nil, fmt.Errorf("transcription: %w", err)
	}

	tr, err := transcript.Parse(raw)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "transcription complete: %d words", len(tr.Words))
	return &Result{Transcript: tr, Raw: raw, Usage: usage}, nil
}

// audioMIME maps the file extension to the MIME type declared to the Files
// API. Unknown extensions fall back to MP3, the merge pipeline's output.
func audioMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m4a":
		return "audio/mp4"
	case ".wav":
		return "audio/wav"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	case ".aac":
		return "audio/aac"
	}
	return "audio/mpeg"
}

// Package transcript holds the word-timestamped transcript shape returned by
// the remote transcription model.
package transcript

import (
	"encoding/json"
	"fmt"
)

// Word is a single transcribed word. Start/End are kept verbatim as the model
// emits them (mm:ss.xx strings); downstream timing decisions happen remotely.
type Word struct {
	Word  string `json:"word"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Transcript is the full transcription of one merged audio file.
type Transcript struct {
	FullTranscript string `json:"full_transcript"`
	Words          []Word `json:"words"`
}

// Parse decodes transcript JSON.
func Parse(data []byte) (*Transcript, error) {
	var tr Transcript
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("parse transcript JSON: %w", err)
	}
	return &tr, nil
}

// Indent re-serializes raw transcript JSON with indentation, the layout the
// planner prompt embeds it in.
func Indent(raw []byte) (string, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("transcript is not valid JSON: %w", err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

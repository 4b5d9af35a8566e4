// Package plan holds the timeline plan produced by the remote planner and the
// advisory consistency checks applied to it.
package plan

import (
	"encoding/json"
	"fmt"
)

const (
	Version = 1
	FPS     = 30.0

	KindTitle  = "title"
	KindEffect = "effect"

	// Text+ clips always render with this font.
	HandwritingFont = "MV Boli"
)

// textCounts fixes the required texts length per effect template. Effects with
// count 0 must omit the field entirely.
var textCounts = map[string]int{
	"Title":           1,
	"SlideTitle":      1,
	"Question":        2,
	"Paragraph":       1,
	"Textbox":         1,
	"Explanation Box": 2,
	"Option":          2,
	"Highlight":       0,
	"Underline":       0,
	"Text+":           1,
}

// Clip is one timed visual element on the timeline. Over references an
// earlier clip's id and establishes stacking order for overlapping clips.
type Clip struct {
	ID         string   `json:"id"`
	Kind       string   `json:"kind"`
	EffectName string   `json:"effect_name"`
	StartSec   float64  `json:"start_sec"`
	EndSec     float64  `json:"end_sec"`
	Texts      []string `json:"texts,omitempty"`
	Font       string   `json:"font,omitempty"`
	Over       string   `json:"over,omitempty"`
}

// Plan is the structured timeline returned by the planner model.
type Plan struct {
	Version int     `json:"version"`
	FPS     float64 `json:"fps"`
	Clips   []Clip  `json:"clips"`
}

// Parse decodes plan JSON.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan JSON: %w", err)
	}
	return &p, nil
}

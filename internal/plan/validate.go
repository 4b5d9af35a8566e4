package plan

import "fmt"

// Validate checks a plan against the timeline contract and returns every
// violation found. The checks are advisory: the plan is produced by a remote
// model and callers surface the warnings instead of rejecting the result.
func Validate(p *Plan) []string {
	var problems []string

	if p.Version != Version {
		problems = append(problems, fmt.Sprintf("version is %d, want %d", p.Version, Version))
	}
	if p.FPS != FPS {
		problems = append(problems, fmt.Sprintf("fps is %g, want %g", p.FPS, FPS))
	}

	index := make(map[string]int, len(p.Clips))
	for i, c := range p.Clips {
		wantID := fmt.Sprintf("clip_%d", i+1)
		if c.ID != wantID {
			problems = append(problems, fmt.Sprintf("clip %d: id %q breaks the sequence, want %q", i, c.ID, wantID))
		}
		if _, dup := index[c.ID]; dup {
			problems = append(problems, fmt.Sprintf("clip %d: duplicate id %q", i, c.ID))
		}
		index[c.ID] = i

		problems = append(problems, validateClip(i, c)...)
	}

	problems = append(problems, validateOverRefs(p.Clips, index)...)
	problems = append(problems, validateOverlaps(p.Clips)...)

	return problems
}

func validateClip(i int, c Clip) []string {
	var problems []string

	if c.Kind != KindTitle && c.Kind != KindEffect {
		problems = append(problems, fmt.Sprintf("clip %s: kind %q is not title or effect", c.ID, c.Kind))
	}

	want, known := textCounts[c.EffectName]
	if !known {
		problems = append(problems, fmt.Sprintf("clip %s: unknown effect_name %q", c.ID, c.EffectName))
	} else if len(c.Texts) != want {
		problems = append(problems, fmt.Sprintf("clip %s: effect %q needs %d texts, has %d", c.ID, c.EffectName, want, len(c.Texts)))
	}

	switch c.Kind {
	case KindTitle:
		if len(c.Texts) == 0 {
			problems = append(problems, fmt.Sprintf("clip %s: title clip without texts", c.ID))
		}
	case KindEffect:
		if len(c.Texts) != 0 {
			problems = append(problems, fmt.Sprintf("clip %s: effect clip must not carry texts", c.ID))
		}
	}

	if c.EffectName == "Text+" && c.Font != HandwritingFont {
		problems = append(problems, fmt.Sprintf("clip %s: Text+ requires font %q, has %q", c.ID, HandwritingFont, c.Font))
	}

	if c.EndSec <= c.StartSec {
		problems = append(problems, fmt.Sprintf("clip %s: end_sec %g is not after start_sec %g", c.ID, c.EndSec, c.StartSec))
	}

	return problems
}

func validateOverRefs(clips []Clip, index map[string]int) []string {
	var problems []string

	for i, c := range clips {
		if c.Over == "" {
			continue
		}
		j, ok := index[c.Over]
		if !ok {
			problems = append(problems, fmt.Sprintf("clip %s: over references unknown id %q", c.ID, c.Over))
			continue
		}
		if j >= i {
			problems = append(problems, fmt.Sprintf("clip %s: over must reference an earlier clip, %q is not", c.ID, c.Over))
		}
	}

	// Cycle detection on the over chain.
	for _, c := range clips {
		if c.Over == "" {
			continue
		}
		seen := map[string]bool{c.ID: true}
		cur := c.Over
		for cur != "" {
			if seen[cur] {
				problems = append(problems, fmt.Sprintf("clip %s: circular over chain through %q", c.ID, cur))
				break
			}
			seen[cur] = true
			j, ok := index[cur]
			if !ok {
				break
			}
			cur = clips[j].Over
		}
	}

	return problems
}

// validateOverlaps flags any pair of time-overlapping clips where neither side
// declares a stacking relation via over.
func validateOverlaps(clips []Clip) []string {
	var problems []string

	for i := 0; i < len(clips); i++ {
		for j := i + 1; j < len(clips); j++ {
			a, b := clips[i], clips[j]
			if a.StartSec >= b.EndSec || b.StartSec >= a.EndSec {
				continue
			}
			if a.Over == "" && b.Over == "" {
				problems = append(problems, fmt.Sprintf("clips %s and %s overlap in time but neither has over", a.ID, b.ID))
			}
		}
	}

	return problems
}

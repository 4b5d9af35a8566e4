package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"slidecast/pkg/executor"
)

// MediaInfo holds duration and codec information from ffprobe.
type MediaInfo struct {
	Duration float64
	Codec    string
}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecName string `json:"codec_name"`
	} `json:"streams"`
}

// Probe returns duration and audio codec for a media file via ffprobe.
func Probe(ctx context.Context, exec executor.Executor, path string) (*MediaInfo, error) {
	out, err := exec.Execute(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=codec_name:format=duration",
		"-of", "json",
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var probe probeOutput
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return nil, fmt.Errorf("ffprobe JSON parse: %w", err)
	}

	dur, _ := strconv.ParseFloat(probe.Format.Duration, 64)

	codec := ""
	if len(probe.Streams) > 0 {
		codec = probe.Streams[0].CodecName
	}
	if codec == "" {
		return nil, fmt.Errorf("ffprobe %s: no audio stream", path)
	}

	return &MediaInfo{Duration: dur, Codec: codec}, nil
}

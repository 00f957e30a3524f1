package transcript

import (
	"strings"
	"time"
)

// Chunk is a contiguous window of captions starting at a given point on the timeline.
type Chunk struct {
	Start    time.Duration
	Captions []Caption
}

// Text joins the chunk's non-empty caption lines.
func (c Chunk) Text() string {
	parts := make([]string, 0, len(c.Captions))
	for _, cap := range c.Captions {
		if s := strings.TrimSpace(cap.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// ChunkByTime splits the transcript into windows of roughly the given duration.
// A window closes once the end of the current caption reaches window past the
// window's start; any trailing captions form a final, possibly shorter, chunk.
// The next window starts overlap before the previous one ended.
func (t Transcript) ChunkByTime(window, overlap time.Duration) []Chunk {
	if len(t.Captions) == 0 {
		return nil
	}

	var chunks []Chunk
	var buf []Caption
	start := t.Captions[0].Start

	for _, c := range t.Captions {
		buf = append(buf, c)
		if c.End()-start >= window {
			chunks = append(chunks, Chunk{Start: start, Captions: buf})
			buf = nil
			start = c.End() - overlap
		}
	}
	if len(buf) > 0 {
		chunks = append(chunks, Chunk{Start: start, Captions: buf})
	}

	return chunks
}

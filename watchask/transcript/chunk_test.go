package transcript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caption(text string, start, dur time.Duration) Caption {
	return Caption{Text: text, Start: start, Duration: dur}
}

func TestChunkByTime(t *testing.T) {
	tests := []struct {
		name           string
		captions       []Caption
		window         time.Duration
		overlap        time.Duration
		expectedStarts []time.Duration
		expectedCounts []int
	}{
		{
			name:     "empty transcript",
			captions: nil,
			window:   75 * time.Second,
		},
		{
			name: "single chunk under window",
			captions: []Caption{
				caption("a", 0, 5*time.Second),
				caption("b", 5*time.Second, 5*time.Second),
			},
			window:         75 * time.Second,
			expectedStarts: []time.Duration{0},
			expectedCounts: []int{2},
		},
		{
			name: "window closes at boundary",
			captions: []Caption{
				caption("a", 0, 40*time.Second),
				caption("b", 40*time.Second, 40*time.Second),
				caption("c", 80*time.Second, 10*time.Second),
			},
			window:         75 * time.Second,
			expectedStarts: []time.Duration{0, 80 * time.Second},
			expectedCounts: []int{2, 1},
		},
		{
			name: "overlap rewinds next window start",
			captions: []Caption{
				caption("a", 0, 80*time.Second),
				caption("b", 80*time.Second, 10*time.Second),
			},
			window:         75 * time.Second,
			overlap:        10 * time.Second,
			expectedStarts: []time.Duration{0, 70 * time.Second},
			expectedCounts: []int{1, 1},
		},
		{
			name: "nonzero first start",
			captions: []Caption{
				caption("a", 30*time.Second, 5*time.Second),
			},
			window:         75 * time.Second,
			expectedStarts: []time.Duration{30 * time.Second},
			expectedCounts: []int{1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tr := Transcript{Captions: test.captions}
			chunks := tr.ChunkByTime(test.window, test.overlap)
			require.Len(t, chunks, len(test.expectedStarts))
			for i, c := range chunks {
				assert.Equal(t, test.expectedStarts[i], c.Start, "chunk %d start", i)
				assert.Len(t, c.Captions, test.expectedCounts[i], "chunk %d captions", i)
			}
		})
	}
}

func TestChunkText(t *testing.T) {
	c := Chunk{
		Captions: []Caption{
			caption("hello", 0, time.Second),
			caption("   ", time.Second, time.Second),
			caption("world", 2*time.Second, time.Second),
		},
	}
	assert.Equal(t, "hello world", c.Text())
}

func TestTranscriptTimestamped(t *testing.T) {
	tr := Transcript{
		Captions: []Caption{
			caption("first line", 0, time.Second),
			caption("second line", 90*time.Second, time.Second),
			caption("", 95*time.Second, time.Second),
		},
	}
	assert.Equal(t, "[0:00] first line\n[1:30] second line", tr.Timestamped())
}

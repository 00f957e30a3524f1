package qgen

import (
	"time"

	"github.com/watchask/watchask/watchask/transcript"
)

func sampleTranscript() transcript.Transcript {
	return transcript.Transcript{
		VideoID:  "abcdefghijk",
		Language: "en",
		Captions: []transcript.Caption{
			{Text: "hello", Start: 0, Duration: 2 * time.Second},
			{Text: "world", Start: 2 * time.Second, Duration: 2 * time.Second},
		},
	}
}

func sampleEmptyTranscript() transcript.Transcript {
	return transcript.Transcript{VideoID: "abcdefghijk", Language: "en"}
}

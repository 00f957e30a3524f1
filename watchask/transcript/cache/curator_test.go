package cache

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchask/watchask/watchask/transcript"
)

func newTestCurator(cfg Config) Curator {
	return Curator{
		fs:     afero.NewMemMapFs(),
		config: cfg,
	}
}

func sampleTranscript(videoID, lang string) transcript.Transcript {
	return transcript.Transcript{
		VideoID:  videoID,
		Language: lang,
		Captions: []transcript.Caption{
			{Text: "hello", Start: 0, Duration: 2 * time.Second},
			{Text: "world", Start: 2 * time.Second, Duration: 2 * time.Second},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	curator := newTestCurator(Config{Dir: "/cache"})

	require.NoError(t, curator.Save(sampleTranscript("abcdefghijk", "en")))

	actual, hit := curator.Get("abcdefghijk", []string{"en"})
	require.True(t, hit)
	assert.Equal(t, "en", actual.Language)
	require.Len(t, actual.Captions, 2)
	assert.Equal(t, "hello", actual.Captions[0].Text)
}

func TestGetMiss(t *testing.T) {
	curator := newTestCurator(Config{Dir: "/cache"})

	_, hit := curator.Get("abcdefghijk", []string{"en"})
	assert.False(t, hit)
}

func TestGetPrefersLanguageChain(t *testing.T) {
	curator := newTestCurator(Config{Dir: "/cache"})
	require.NoError(t, curator.Save(sampleTranscript("abcdefghijk", "ru")))
	require.NoError(t, curator.Save(sampleTranscript("abcdefghijk", "lv")))

	actual, hit := curator.Get("abcdefghijk", []string{"lv", "ru"})
	require.True(t, hit)
	assert.Equal(t, "lv", actual.Language)
}

func TestStatusAndPurge(t *testing.T) {
	curator := newTestCurator(Config{Dir: "/cache"})
	require.NoError(t, curator.Save(sampleTranscript("abcdefghijk", "en")))
	require.NoError(t, curator.Save(sampleTranscript("lmnopqrstuv", "lv")))

	status := curator.Status()
	require.NoError(t, status.Err)
	assert.Equal(t, 2, status.Count)
	assert.Equal(t, "/cache", status.Location)

	require.NoError(t, curator.Purge())

	status = curator.Status()
	assert.Error(t, status.Err)
}

func TestCorruptEntryIsAMiss(t *testing.T) {
	curator := newTestCurator(Config{Dir: "/cache"})
	require.NoError(t, afero.WriteFile(curator.fs, "/cache/abcdefghijk.en.json", []byte("{not json"), 0644))

	_, hit := curator.Get("abcdefghijk", []string{"en"})
	assert.False(t, hit)
}

package cache

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"

	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/watchask/transcript"
)

// DefaultMaxAge is how long a cached transcript is trusted before it is refetched.
const DefaultMaxAge = 7 * 24 * time.Hour

type Config struct {
	Dir    string
	MaxAge time.Duration
}

// Curator manages the on-disk transcript cache; one JSON file per video+language track.
type Curator struct {
	fs     afero.Fs
	config Config
}

func NewCurator(cfg Config) Curator {
	return Curator{
		fs:     afero.NewOsFs(),
		config: cfg,
	}
}

// Entry describes one cached transcript file.
type Entry struct {
	VideoID  string
	Language string
	Size     int64
	Fetched  time.Time
}

type Status struct {
	Location string
	Count    int
	Entries  []Entry
	Err      error
}

func (c *Curator) fileName(videoID, language string) string {
	return path.Join(c.config.Dir, fmt.Sprintf("%s.%s.json", videoID, language))
}

// Get returns the cached transcript for the given video in any language,
// preferring the given chain order. A stale entry (older than MaxAge) is a miss.
func (c *Curator) Get(videoID string, languages []string) (transcript.Transcript, bool) {
	entries, err := c.entriesFor(videoID)
	if err != nil || len(entries) == 0 {
		return transcript.Transcript{}, false
	}

	ordered := orderByPreference(entries, languages)
	for _, entry := range ordered {
		if c.config.MaxAge > 0 && time.Since(entry.Fetched) > c.config.MaxAge {
			log.Debugf("cached transcript for %s (%s) is stale, ignoring", videoID, entry.Language)
			continue
		}
		t, err := c.read(c.fileName(entry.VideoID, entry.Language))
		if err != nil {
			log.Warnf("unable to read cached transcript for %s: %v", videoID, err)
			continue
		}
		return t, true
	}
	return transcript.Transcript{}, false
}

// Save writes the transcript into the cache, replacing any previous entry for
// the same video and language.
func (c *Curator) Save(t transcript.Transcript) error {
	if err := c.fs.MkdirAll(c.config.Dir, 0755); err != nil {
		return fmt.Errorf("unable to create cache dir: %w", err)
	}

	contents, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("unable to encode transcript: %w", err)
	}

	target := c.fileName(t.VideoID, t.Language)
	if err := afero.WriteFile(c.fs, target, contents, 0644); err != nil {
		return fmt.Errorf("unable to write transcript cache entry: %w", err)
	}
	log.Debugf("cached transcript for %s (%s) at %s", t.VideoID, t.Language, target)
	return nil
}

// Status summarizes the cache contents.
func (c *Curator) Status() Status {
	status := Status{
		Location: c.config.Dir,
	}

	infos, err := afero.ReadDir(c.fs, c.config.Dir)
	if err != nil {
		status.Err = fmt.Errorf("unable to read cache dir %q: %w", c.config.Dir, err)
		return status
	}

	for _, info := range infos {
		videoID, language, ok := splitEntryName(info.Name())
		if !ok {
			continue
		}
		status.Entries = append(status.Entries, Entry{
			VideoID:  videoID,
			Language: language,
			Size:     info.Size(),
			Fetched:  info.ModTime(),
		})
	}
	status.Count = len(status.Entries)

	sort.Slice(status.Entries, func(i, j int) bool {
		return status.Entries[i].Fetched.After(status.Entries[j].Fetched)
	})

	return status
}

// Purge removes the entire cache directory.
func (c *Curator) Purge() error {
	return c.fs.RemoveAll(c.config.Dir)
}

func (c *Curator) read(filePath string) (transcript.Transcript, error) {
	contents, err := afero.ReadFile(c.fs, filePath)
	if err != nil {
		return transcript.Transcript{}, err
	}
	var t transcript.Transcript
	if err := json.Unmarshal(contents, &t); err != nil {
		return transcript.Transcript{}, fmt.Errorf("corrupt cache entry %q: %w", filePath, err)
	}
	return t, nil
}

func (c *Curator) entriesFor(videoID string) ([]Entry, error) {
	status := c.Status()
	if status.Err != nil {
		return nil, status.Err
	}
	var entries []Entry
	for _, entry := range status.Entries {
		if entry.VideoID == videoID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func splitEntryName(name string) (videoID, language string, ok bool) {
	if !strings.HasSuffix(name, ".json") {
		return "", "", false
	}
	name = strings.TrimSuffix(name, ".json")
	parts := strings.SplitN(name, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func orderByPreference(entries []Entry, languages []string) []Entry {
	rank := func(lang string) int {
		for i, l := range languages {
			if l == lang {
				return i
			}
		}
		return len(languages)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return rank(entries[i].Language) < rank(entries[j].Language)
	})
	return entries
}

package video

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/watchask/watchask/internal"
)

// IDLength is the fixed length of a YouTube video identifier.
const IDLength = 11

var idPattern = regexp.MustCompile(`(?:v=|youtu\.be/|shorts/|embed/)([\w-]{11})`)
var bareIDPattern = regexp.MustCompile(`^[\w-]{11}$`)

// ParseID extracts the video ID from any of the common YouTube URL shapes
// (watch URLs, youtu.be short links, /shorts/ and /embed/ paths) or accepts a
// bare 11-character ID as-is.
func ParseID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("no video URL or ID provided")
	}

	if bareIDPattern.MatchString(raw) {
		return raw, nil
	}

	if id := parseFromURL(raw); id != "" {
		return id, nil
	}

	// last resort: scan for an ID-shaped token anywhere in the string
	if m := idPattern.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}

	return "", fmt.Errorf("unable to find a video ID in %q", raw)
}

func parseFromURL(raw string) string {
	if !internal.HasAnyOfPrefixes(raw, "http://", "https://") {
		// url.Parse keeps the host empty for scheme-less input like "youtube.com/watch?v=..."
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	host := u.Hostname()
	switch {
	case strings.HasSuffix(host, "youtu.be"):
		segment := strings.SplitN(strings.Trim(u.Path, "/"), "/", 2)[0]
		return truncateID(segment)
	case strings.Contains(host, "youtube.com"):
		if v := u.Query().Get("v"); v != "" {
			return truncateID(v)
		}
		for _, prefix := range []string{"/shorts/", "/embed/"} {
			if strings.HasPrefix(u.Path, prefix) {
				return truncateID(strings.TrimPrefix(u.Path, prefix))
			}
		}
	}
	return ""
}

func truncateID(candidate string) string {
	candidate = strings.SplitN(candidate, "/", 2)[0]
	if len(candidate) > IDLength {
		candidate = candidate[:IDLength]
	}
	if !bareIDPattern.MatchString(candidate) {
		return ""
	}
	return candidate
}

// WatchURL returns the canonical watch URL for the given video ID.
func WatchURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
}

// EmbedURL returns an embeddable player URL starting playback at the given offset.
func EmbedURL(id string, start time.Duration) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?start=%d", id, int(start.Seconds()))
}

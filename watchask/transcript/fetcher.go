package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-multierror"

	"github.com/watchask/watchask/internal/log"
)

const defaultBaseURL = "https://video.google.com/timedtext"

// ErrNoCaptions indicates that no caption track could be fetched for the video in any language.
type ErrNoCaptions struct {
	VideoID string
	Reasons error
}

func (e *ErrNoCaptions) Error() string {
	return fmt.Sprintf("no captions found for video %q: %+v", e.VideoID, e.Reasons)
}

type Config struct {
	// Languages is the preference chain of caption language codes to try, in order.
	Languages []string
	// BaseURL overrides the timedtext endpoint (used in tests).
	BaseURL string
	Timeout time.Duration
}

// Fetcher retrieves caption tracks from the timedtext service.
type Fetcher struct {
	config     Config
	httpClient *http.Client
}

func NewFetcher(cfg Config) *Fetcher {
	if len(cfg.Languages) == 0 {
		cfg.Languages = DefaultLanguages
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	client := cleanhttp.DefaultClient()
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}
	return &Fetcher{
		config:     cfg,
		httpClient: client,
	}
}

// Fetch returns the best available caption track for the given video ID. Each
// language in the preference chain is tried directly first; failing that, the
// video's track listing is consulted for a preferred language and finally for
// any track at all. Per-language failures are aggregated into the final error.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) (Transcript, error) {
	var errs error

	for _, lang := range f.config.Languages {
		t, err := f.fetchTrack(ctx, videoID, track{LangCode: lang})
		if err != nil {
			log.Debugf("no %q captions for video %s: %v", lang, videoID, err)
			errs = multierror.Append(errs, fmt.Errorf("lang=%q: %w", lang, err))
			continue
		}
		return t, nil
	}

	tracks, err := f.listTracks(ctx, videoID)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("track listing: %w", err))
		return Transcript{}, &ErrNoCaptions{VideoID: videoID, Reasons: errs}
	}

	// preferred languages from the listing first (the listing carries track
	// names that the direct attempts above could not know about)
	for _, lang := range f.config.Languages {
		for _, tr := range tracks {
			if tr.LangCode != lang {
				continue
			}
			t, err := f.fetchTrack(ctx, videoID, tr)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("listed lang=%q: %w", lang, err))
				continue
			}
			return t, nil
		}
	}

	// otherwise take whatever track fetches first
	for _, tr := range tracks {
		t, err := f.fetchTrack(ctx, videoID, tr)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("listed lang=%q: %w", tr.LangCode, err))
			continue
		}
		return t, nil
	}

	return Transcript{}, &ErrNoCaptions{VideoID: videoID, Reasons: errs}
}

type track struct {
	Name     string `xml:"name,attr"`
	LangCode string `xml:"lang_code,attr"`
}

type trackList struct {
	Tracks []track `xml:"track"`
}

func (f *Fetcher) listTracks(ctx context.Context, videoID string) ([]track, error) {
	body, err := f.get(ctx, url.Values{
		"type": []string{"list"},
		"v":    []string{videoID},
	})
	if err != nil {
		return nil, err
	}

	var list trackList
	if err := xml.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("unable to parse track listing: %w", err)
	}
	if len(list.Tracks) == 0 {
		return nil, fmt.Errorf("video has no listed caption tracks")
	}
	return list.Tracks, nil
}

type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

func (f *Fetcher) fetchTrack(ctx context.Context, videoID string, tr track) (Transcript, error) {
	params := url.Values{
		"v":    []string{videoID},
		"lang": []string{tr.LangCode},
	}
	if tr.Name != "" {
		params.Set("name", tr.Name)
	}

	body, err := f.get(ctx, params)
	if err != nil {
		return Transcript{}, err
	}

	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return Transcript{}, fmt.Errorf("unable to parse caption track: %w", err)
	}
	if len(doc.Lines) == 0 {
		return Transcript{}, fmt.Errorf("caption track is empty")
	}

	captions := make([]Caption, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		captions = append(captions, Caption{
			Text:     line.Body,
			Start:    time.Duration(line.Start * float64(time.Second)),
			Duration: time.Duration(line.Dur * float64(time.Second)),
		})
	}

	return Transcript{
		VideoID:  videoID,
		Language: tr.LangCode,
		Captions: captions,
	}, nil
}

func (f *Fetcher) get(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer log.CloseAndLogError(resp.Body, req.URL.String())

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext service returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response")
	}
	return body, nil
}

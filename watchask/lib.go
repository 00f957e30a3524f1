package watchask

import (
	"context"
	"fmt"
	"time"

	"github.com/scylladb/go-set/strset"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/watchask/watchask/internal/bus"
	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/watchask/event"
	"github.com/watchask/watchask/watchask/event/monitor"
	"github.com/watchask/watchask/watchask/logger"
	"github.com/watchask/watchask/watchask/qgen"
	"github.com/watchask/watchask/watchask/transcript"
	"github.com/watchask/watchask/watchask/transcript/cache"
	"github.com/watchask/watchask/watchask/video"
)

const (
	// DefaultChunkWindow is the caption time window handed to each chunked generation call.
	DefaultChunkWindow = 75 * time.Second

	// DefaultMaxChunks caps how many leading chunks are sent to the model.
	DefaultMaxChunks = 8

	// DefaultMaxQuestions caps the size of a generated question set.
	DefaultMaxQuestions = 20

	// minFragmentChars is the smallest chunk text worth asking the model about.
	minFragmentChars = 60

	// fallbackPerChunk is how many literal fallback items to build when the model fails on a chunk.
	fallbackPerChunk = 2
)

// GenerateConfig tunes the question-generation pipeline.
type GenerateConfig struct {
	Languages    []string
	SingleShot   bool // one model call over the whole transcript instead of per-chunk calls
	MaxQuestions int
	ChunkWindow  time.Duration
	MaxChunks    int
}

func (c GenerateConfig) withDefaults() GenerateConfig {
	if c.MaxQuestions <= 0 {
		c.MaxQuestions = DefaultMaxQuestions
	}
	if c.ChunkWindow <= 0 {
		c.ChunkWindow = DefaultChunkWindow
	}
	if c.MaxChunks <= 0 {
		c.MaxChunks = DefaultMaxChunks
	}
	if len(c.Languages) == 0 {
		c.Languages = transcript.DefaultLanguages
	}
	return c
}

// Result is a generated question set for a single video.
type Result struct {
	VideoID      string
	Language     string
	LanguageName string
	Questions    []qgen.Question
}

// GenerateQuestions runs the full pipeline for the given video URL or ID:
// resolve the video, fetch its captions (through the cache), and generate a
// deduplicated, capped question set.
func GenerateQuestions(ctx context.Context, fetcher *transcript.Fetcher, curator *cache.Curator, generator *qgen.Generator, userInput string, cfg GenerateConfig) (Result, error) {
	cfg = cfg.withDefaults()

	videoID, err := video.ParseID(userInput)
	if err != nil {
		return Result{}, err
	}

	t, err := fetchTranscript(ctx, fetcher, curator, videoID, cfg.Languages)
	if err != nil {
		return Result{}, err
	}

	languageName := transcript.LanguageName(t.Language)
	log.Infof("captions loaded: video=%s language=%s lines=%d", videoID, t.Language, len(t.Captions))

	var questions []qgen.Question
	if cfg.SingleShot {
		questions, err = generator.FromTranscript(ctx, t, languageName, cfg.MaxQuestions)
		if err != nil {
			return Result{}, err
		}
	} else {
		questions = generateChunked(ctx, generator, t, languageName, cfg)
	}

	if len(questions) == 0 {
		return Result{}, fmt.Errorf("couldn't generate any questions from the transcript of video %q", videoID)
	}

	return Result{
		VideoID:      videoID,
		Language:     t.Language,
		LanguageName: languageName,
		Questions:    questions,
	}, nil
}

func fetchTranscript(ctx context.Context, fetcher *transcript.Fetcher, curator *cache.Curator, videoID string, languages []string) (transcript.Transcript, error) {
	stage := &progress.Stage{Current: "checking transcript cache"}
	prog := &progress.Manual{Total: 1}

	bus.Publish(partybus.Event{
		Type: event.TranscriptFetchStarted,
		Value: progress.StagedProgressable(&struct {
			progress.Stager
			progress.Progressable
		}{
			Stager:       progress.Stager(stage),
			Progressable: progress.Progressable(prog),
		}),
	})
	defer prog.SetCompleted()

	if curator != nil {
		if t, hit := curator.Get(videoID, languages); hit {
			log.Debugf("transcript cache hit for %s", videoID)
			stage.Current = "loaded from cache"
			return t, nil
		}
	}

	stage.Current = "downloading captions"
	t, err := fetcher.Fetch(ctx, videoID)
	if err != nil {
		return transcript.Transcript{}, err
	}

	if curator != nil {
		if err := curator.Save(t); err != nil {
			log.Warnf("unable to cache transcript for %s: %v", videoID, err)
		}
	}
	return t, nil
}

func trackGeneration() (*progress.Manual, *progress.Manual, *progress.Manual, *progress.Manual) {
	chunksProcessed := &progress.Manual{}
	questionsDiscovered := &progress.Manual{}
	rejected := &progress.Manual{}
	fallbacks := &progress.Manual{}

	bus.Publish(partybus.Event{
		Type: event.QuestionGenerationStarted,
		Value: monitor.Generation{
			ChunksProcessed:     progress.Monitorable(chunksProcessed),
			QuestionsDiscovered: progress.Monitorable(questionsDiscovered),
			Rejected:            progress.Monitorable(rejected),
			Fallbacks:           progress.Monitorable(fallbacks),
		},
	})

	return chunksProcessed, questionsDiscovered, rejected, fallbacks
}

// generateChunked walks the leading transcript chunks, asking the model for a
// few questions per chunk and steering away from already-asked ones. A chunk
// whose generation fails contributes literal fallback questions instead.
func generateChunked(ctx context.Context, generator *qgen.Generator, t transcript.Transcript, languageName string, cfg GenerateConfig) []qgen.Question {
	chunks := t.ChunkByTime(cfg.ChunkWindow, 0)
	if len(chunks) > cfg.MaxChunks {
		chunks = chunks[:cfg.MaxChunks]
	}

	chunksProcessed, questionsDiscovered, rejected, fallbacks := trackGeneration()
	chunksProcessed.Total = int64(len(chunks))
	defer chunksProcessed.SetCompleted()

	seen := strset.New()
	var previous []string
	var out []qgen.Question

	for _, chunk := range chunks {
		chunksProcessed.N++

		fragment := chunk.Text()
		if len(fragment) < minFragmentChars {
			continue
		}

		items, err := generator.FromChunk(ctx, fragment, languageName, previous)
		if err != nil {
			log.Warnf("question generation failed for chunk at %s: %v", transcript.FormatTimestamp(chunk.Start), err)
			items = qgen.FallbackQuestions(fragment, fallbackPerChunk, chunk.Start)
			fallbacks.N += int64(len(items))
		}

		for _, item := range items {
			if item.Start == 0 {
				item.Start = chunk.Start
			}
			if seen.Has(item.Prompt) {
				rejected.N++
				continue
			}
			seen.Add(item.Prompt)
			previous = append(previous, item.Prompt)
			out = append(out, item)
			questionsDiscovered.N++

			if len(out) >= cfg.MaxQuestions {
				return out
			}
		}
	}

	return out
}

// SetLogger sets the logger object used for all logging calls.
func SetLogger(logger logger.Logger) {
	log.Log = logger
}

// SetBus sets the event bus for all published events onto (in-library subscriptions are not allowed).
func SetBus(b *partybus.Bus) {
	bus.SetPublisher(b)
}

package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/watchask/watchask/internal/file"
	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/watchask"
	jsonpresenter "github.com/watchask/watchask/watchask/presenter/json"
	"github.com/watchask/watchask/watchask/presenter/models"
	"github.com/watchask/watchask/watchask/qgen"
	"github.com/watchask/watchask/watchask/quiz"
	"github.com/watchask/watchask/watchask/video"
	"github.com/watchask/watchask/watchask/watchaskerr"
)

var (
	quizFromReport string
	quizReportPath string
	quizFailBelow  float64
)

var quizCmd = &cobra.Command{
	Use:   "quiz [VIDEO]",
	Short: "play an interactive quiz in the terminal",
	Long: `Generates questions for the given video and runs them as an interactive quiz.
A previously generated JSON report can be replayed instead with --from (path or URL).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuizCmd,
}

func init() {
	quizCmd.Flags().StringVar(&quizFromReport, "from", "", "play questions from a previously generated JSON report (path or URL)")
	quizCmd.Flags().Float64Var(&quizFailBelow, "fail-below", 0, "set the return code to 1 if the final score is below the given percentage (0-100)")
	quizCmd.Flags().StringVar(&quizReportPath, "report", "", "write a JSON report of the finished quiz, including the final score, to the given file")

	rootCmd.AddCommand(quizCmd)
}

func runQuizCmd(_ *cobra.Command, args []string) error {
	var videoID, language string
	var questions []qgen.Question

	switch {
	case quizFromReport != "":
		doc, err := fetchReport(quizFromReport)
		if err != nil {
			return err
		}
		videoID = doc.Video.ID
		language = doc.Video.Language
		questions = reportQuestions(doc)
	case len(args) == 1:
		// no terminal UI is attached while generating, so drain the progress events the pipeline publishes
		go func() {
			for e := range eventSubscription.Events() {
				log.Debugf("event: %s", e.Type)
			}
		}()

		fetcher, curator, generator, err := newPipeline()
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, "Generating questions...")
		result, err := watchask.GenerateQuestions(
			context.Background(),
			fetcher,
			curator,
			generator,
			args[0],
			appConfig.Generate.ToGenerateConfig(appConfig.Fetch.Languages),
		)
		if err != nil {
			return err
		}
		videoID = result.VideoID
		language = result.Language
		questions = result.Questions
	default:
		return fmt.Errorf("provide a video URL/ID or --from <report>")
	}

	if len(questions) == 0 {
		return fmt.Errorf("no questions to play")
	}

	session := quiz.NewSession(videoID, language, questions)
	if err := playQuiz(session, os.Stdin, os.Stdout); err != nil {
		return err
	}

	if quizReportPath != "" {
		if err := writeQuizReport(session, quizReportPath); err != nil {
			return err
		}
	}

	if quizFailBelow > 0 && session.Percentage() < quizFailBelow {
		return watchaskerr.ErrBelowScoreThreshold
	}
	return nil
}

// quizReportDocument captures a finished session, including the score summary.
func quizReportDocument(session *quiz.Session) models.Document {
	doc := models.NewDocument(session.VideoID, session.Language, session.Questions)
	doc.Summary = &models.Summary{
		Score:      session.Score(),
		Total:      len(session.Questions),
		Percentage: session.Percentage(),
		Grade:      session.Grade(),
	}
	return doc
}

func writeQuizReport(session *quiz.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to write quiz report: %w", err)
	}
	defer f.Close()

	if err := jsonpresenter.NewPresenter(quizReportDocument(session)).Present(f); err != nil {
		return fmt.Errorf("unable to write quiz report: %w", err)
	}
	return nil
}

// fetchReport downloads (or copies) a generated JSON report and decodes it.
func fetchReport(src string) (models.Document, error) {
	tmp, err := os.CreateTemp("", "watchask-report-*.json")
	if err != nil {
		return models.Document{}, err
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)

	if err := file.NewGetter(nil).GetFile(tmpPath, src); err != nil {
		return models.Document{}, fmt.Errorf("unable to fetch report %q: %w", src, err)
	}

	contents, err := os.ReadFile(tmpPath)
	if err != nil {
		return models.Document{}, err
	}

	var doc models.Document
	if err := json.Unmarshal(contents, &doc); err != nil {
		return models.Document{}, fmt.Errorf("malformed report %q: %w", src, err)
	}
	if doc.Video.ID == "" || len(doc.Questions) == 0 {
		return models.Document{}, fmt.Errorf("report %q has no playable questions", src)
	}
	return doc, nil
}

func reportQuestions(doc models.Document) []qgen.Question {
	questions := make([]qgen.Question, 0, len(doc.Questions))
	for _, q := range doc.Questions {
		var distractors []string
		for _, choice := range q.Choices {
			if choice != q.Answer {
				distractors = append(distractors, choice)
			}
		}
		questions = append(questions, qgen.Question{
			Prompt:      q.Question,
			Correct:     q.Answer,
			Distractors: distractors,
			Difficulty:  q.Difficulty,
			Start:       time.Duration(q.Start * float64(time.Second)),
		})
	}
	return questions
}

func playQuiz(session *quiz.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	total := len(session.Questions)

	fmt.Fprintf(out, "Quiz for %s (%d questions)\n\n", video.WatchURL(session.VideoID), total)

	for !session.Done() {
		q, choices, err := session.Current()
		if err != nil {
			return err
		}

		if session.AwaitingRetry() {
			fmt.Fprintln(out, color.Yellow.Sprint("One more try!"))
		} else {
			fmt.Fprintf(out, "Question %d of %d", session.Index()+1, total)
			if q.Difficulty != "" {
				fmt.Fprintf(out, " (%s)", q.Difficulty)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, color.Bold.Sprint(q.Prompt))
		for i, choice := range choices {
			fmt.Fprintf(out, "  %d) %s\n", i+1, choice)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		pick, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || pick < 1 || pick > len(choices) {
			fmt.Fprintf(out, "Please answer with a number between 1 and %d\n\n", len(choices))
			continue
		}

		outcome, err := session.Submit(choices[pick-1])
		if err != nil {
			return err
		}

		switch {
		case outcome.Correct:
			fmt.Fprintln(out, color.Green.Sprint("Correct!"))
		case outcome.Advanced:
			fmt.Fprintf(out, "%s The answer was: %s\n", color.Red.Sprint("Not quite."), outcome.CorrectAnswer)
		default:
			fmt.Fprintf(out, "%s The answer was: %s\n", color.Red.Sprint("Not quite."), outcome.CorrectAnswer)
			fmt.Fprintf(out, "Rewatch this part: %s\n", video.EmbedURL(session.VideoID, outcome.JumpTo))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Final score: %d/%d (%.0f%%)\n", session.Score(), total, session.Percentage())
	switch session.Grade() {
	case quiz.GradeExcellent:
		fmt.Fprintln(out, color.Green.Sprint("Excellent! You really paid attention!"))
	case quiz.GradeGood:
		fmt.Fprintln(out, color.Yellow.Sprint("Good job! Rewatch the tricky parts and try again."))
	default:
		fmt.Fprintln(out, color.Red.Sprint("Keep practicing! Watch the video once more."))
	}

	return nil
}

package quiz

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/watchask/watchask/watchask/qgen"
)

// Grade buckets for a finished session.
const (
	GradeExcellent = "excellent"
	GradeGood      = "good"
	GradePractice  = "keep-practicing"
)

// Outcome describes what a single answer submission did to the session.
type Outcome struct {
	Correct       bool
	SecondAttempt bool          // this submission was the retry after a miss
	Advanced      bool          // the session moved on to the next question
	CorrectAnswer string        // revealed after a first miss
	JumpTo        time.Duration // where to rewatch for the missed answer
}

// Session is a single play-through of a generated question set. Sessions may
// be shared across API request handlers, so all progress state is guarded by
// a mutex.
type Session struct {
	ID        string
	VideoID   string
	Language  string
	Questions []qgen.Question

	lock          sync.Mutex
	index         int
	score         int
	secondAttempt bool
}

func NewSession(videoID, language string, questions []qgen.Question) *Session {
	return &Session{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		Language:  language,
		Questions: questions,
	}
}

// Index is the zero-based position of the active question.
func (s *Session) Index() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.index
}

// Score is the number of questions answered correctly so far.
func (s *Session) Score() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.score
}

// Done indicates all questions have been answered.
func (s *Session) Done() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.done()
}

func (s *Session) done() bool {
	return s.index >= len(s.Questions)
}

// AwaitingRetry indicates the active question was missed once and a second
// attempt is expected next.
func (s *Session) AwaitingRetry() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.secondAttempt
}

// Current returns the active question along with its presented choice order.
// The order is varied deterministically by question index so replays of the
// same session show the same layout.
func (s *Session) Current() (qgen.Question, []string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.done() {
		return qgen.Question{}, nil, fmt.Errorf("quiz is finished")
	}
	q := s.Questions[s.index]
	choices := q.Choices()
	if s.index%2 == 1 && len(choices) >= 2 {
		choices[0], choices[1] = choices[1], choices[0]
	}
	return q, choices, nil
}

// Submit grades the given choice against the active question. A first miss
// does not advance: the correct answer is revealed and the next submission for
// this question is the second (and final) attempt, which always advances and
// still scores if correct.
func (s *Session) Submit(choice string) (Outcome, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.done() {
		return Outcome{}, fmt.Errorf("quiz is finished")
	}

	q := s.Questions[s.index]
	correct := choice == q.Correct

	if s.secondAttempt {
		s.secondAttempt = false
		if correct {
			s.score++
		}
		s.index++
		return Outcome{
			Correct:       correct,
			SecondAttempt: true,
			Advanced:      true,
			CorrectAnswer: q.Correct,
		}, nil
	}

	if correct {
		s.score++
		s.index++
		return Outcome{
			Correct:  true,
			Advanced: true,
		}, nil
	}

	s.secondAttempt = true
	return Outcome{
		Correct:       false,
		CorrectAnswer: q.Correct,
		JumpTo:        q.Start,
	}, nil
}

// Percentage is the final score as a 0-100 value.
func (s *Session) Percentage() float64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.percentage()
}

func (s *Session) percentage() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.score) / float64(len(s.Questions)) * 100
}

// Grade buckets the percentage the way the quiz summarizes a finished run.
func (s *Session) Grade() string {
	s.lock.Lock()
	defer s.lock.Unlock()

	switch p := s.percentage(); {
	case p >= 80:
		return GradeExcellent
	case p >= 60:
		return GradeGood
	default:
		return GradePractice
	}
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchask/watchask/watchask"
	"github.com/watchask/watchask/watchask/qgen"
)

func testServer(t *testing.T, generate GenerateFunc) *Server {
	t.Helper()
	return NewServer(Config{Host: "127.0.0.1", Port: 0}, generate)
}

func stubGenerate(questions []qgen.Question) GenerateFunc {
	return func(_ context.Context, userInput string) (watchask.Result, error) {
		return watchask.Result{
			VideoID:   "dQw4w9WgXcQ",
			Language:  "en",
			Questions: questions,
		}, nil
	}
}

func sampleQuestions() []qgen.Question {
	return []qgen.Question{
		{
			Prompt:      "What color was the balloon?",
			Correct:     "red",
			Distractors: []string{"blue", "green"},
			Difficulty:  "easy",
			Start:       42 * time.Second,
		},
		{
			Prompt:      "Who let the dogs out?",
			Correct:     "nobody knows",
			Distractors: []string{"the mailman", "grandma"},
			Difficulty:  "hard",
			Start:       90 * time.Second,
		},
	}
}

func doJSON(t *testing.T, handler http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echoHeaderContentType, "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

const echoHeaderContentType = "Content-Type"

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

func TestHealthz(t *testing.T) {
	s := testServer(t, stubGenerate(nil))

	rec := doJSON(t, s.Handler(), http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]string
	decode(t, rec, &payload)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "watchask", payload["name"])
}

func TestCreateQuiz(t *testing.T) {
	s := testServer(t, stubGenerate(sampleQuestions()))

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/quizzes", createQuizRequest{URL: "https://youtu.be/dQw4w9WgXcQ"})

	require.Equal(t, http.StatusCreated, rec.Code)
	var quiz quizResponse
	decode(t, rec, &quiz)
	assert.NotEmpty(t, quiz.ID)
	assert.Equal(t, "dQw4w9WgXcQ", quiz.VideoID)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", quiz.WatchURL)
	assert.Equal(t, 2, quiz.TotalQuestions)
	assert.False(t, quiz.Done)
}

func TestCreateQuizMissingURL(t *testing.T) {
	s := testServer(t, stubGenerate(sampleQuestions()))

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/quizzes", createQuizRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateQuizGenerationFailure(t *testing.T) {
	s := testServer(t, func(_ context.Context, _ string) (watchask.Result, error) {
		return watchask.Result{}, fmt.Errorf("no captions found")
	})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/quizzes", createQuizRequest{URL: "https://youtu.be/dQw4w9WgXcQ"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var payload errorResponse
	decode(t, rec, &payload)
	assert.Contains(t, payload.Message, "no captions")
}

func TestQuizNotFound(t *testing.T) {
	s := testServer(t, stubGenerate(nil))

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/quizzes/nope"},
		{http.MethodGet, "/v1/quizzes/nope/question"},
		{http.MethodPost, "/v1/quizzes/nope/answer"},
		{http.MethodDelete, "/v1/quizzes/nope"},
	} {
		rec := doJSON(t, s.Handler(), target.method, target.path, nil)
		assert.Equalf(t, http.StatusNotFound, rec.Code, "%s %s", target.method, target.path)
	}
}

func TestQuizPlaythrough(t *testing.T) {
	s := testServer(t, stubGenerate(sampleQuestions()))

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/quizzes", createQuizRequest{URL: "dQw4w9WgXcQ"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var quiz quizResponse
	decode(t, rec, &quiz)

	base := "/v1/quizzes/" + quiz.ID

	// first question is up
	rec = doJSON(t, s.Handler(), http.MethodGet, base+"/question", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var question questionResponse
	decode(t, rec, &question)
	assert.Equal(t, 0, question.Index)
	assert.Equal(t, "What color was the balloon?", question.Question)
	assert.Contains(t, question.Choices, "red")
	assert.Len(t, question.Choices, 3)
	assert.False(t, question.Retry)

	// miss on the first attempt: no advance, answer revealed, jump hint present
	rec = doJSON(t, s.Handler(), http.MethodPost, base+"/answer", answerRequest{Choice: "blue"})
	require.Equal(t, http.StatusOK, rec.Code)
	var answer answerResponse
	decode(t, rec, &answer)
	assert.False(t, answer.Correct)
	assert.False(t, answer.Advanced)
	assert.Equal(t, "red", answer.CorrectAnswer)
	assert.Equal(t, 42.0, answer.JumpTo)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?start=42", answer.EmbedURL)

	// question is now flagged as a retry
	rec = doJSON(t, s.Handler(), http.MethodGet, base+"/question", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &question)
	assert.True(t, question.Retry)

	// second attempt scores and advances
	rec = doJSON(t, s.Handler(), http.MethodPost, base+"/answer", answerRequest{Choice: "red"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &answer)
	assert.True(t, answer.Correct)
	assert.True(t, answer.SecondAttempt)
	assert.True(t, answer.Advanced)
	assert.Equal(t, 1, answer.Score)
	assert.False(t, answer.Done)

	// last question answered correctly on the first try
	rec = doJSON(t, s.Handler(), http.MethodPost, base+"/answer", answerRequest{Choice: "nobody knows"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &answer)
	assert.True(t, answer.Correct)
	assert.Equal(t, 2, answer.Score)
	assert.True(t, answer.Done)

	// finished quiz reports a summary
	rec = doJSON(t, s.Handler(), http.MethodGet, base+"/question", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &quiz)
	assert.True(t, quiz.Done)
	assert.Equal(t, 100.0, quiz.Percentage)
	assert.Equal(t, "excellent", quiz.Grade)

	// further submissions are rejected
	rec = doJSON(t, s.Handler(), http.MethodPost, base+"/answer", answerRequest{Choice: "red"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// and the quiz can be removed
	rec = doJSON(t, s.Handler(), http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, s.Handler(), http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/watchask/watchask/internal"
	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/internal/version"
	"github.com/watchask/watchask/watchask"
	"github.com/watchask/watchask/watchask/quiz"
	"github.com/watchask/watchask/watchask/video"
)

// GenerateFunc builds a question set for a user-provided video URL or ID.
type GenerateFunc func(ctx context.Context, userInput string) (watchask.Result, error)

type Config struct {
	Host string
	Port int
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Server exposes quiz sessions over HTTP.
type Server struct {
	config   Config
	echo     *echo.Echo
	store    *quiz.Store
	generate GenerateFunc
}

func NewServer(cfg Config, generate GenerateFunc) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		config:   cfg,
		echo:     e,
		store:    quiz.NewStore(),
		generate: generate,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/healthz", s.health)
	v1 := s.echo.Group("/v1")
	v1.POST("/quizzes", s.createQuiz)
	v1.GET("/quizzes/:id", s.showQuiz)
	v1.GET("/quizzes/:id/question", s.currentQuestion)
	v1.POST("/quizzes/:id/answer", s.submitAnswer)
	v1.DELETE("/quizzes/:id", s.deleteQuiz)
}

// Handler exposes the underlying http handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	log.Infof("quiz API listening on %s", s.config.Address())
	return s.echo.Start(s.config.Address())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

type errorResponse struct {
	Message string `json:"message"`
}

type createQuizRequest struct {
	URL string `json:"url"`
}

type quizResponse struct {
	ID             string  `json:"id"`
	VideoID        string  `json:"videoId"`
	WatchURL       string  `json:"watchUrl"`
	Language       string  `json:"language"`
	TotalQuestions int     `json:"totalQuestions"`
	Index          int     `json:"index"`
	Score          int     `json:"score"`
	Done           bool    `json:"done"`
	Percentage     float64 `json:"percentage,omitempty"`
	Grade          string  `json:"grade,omitempty"`
}

type questionResponse struct {
	Index      int      `json:"index"`
	Total      int      `json:"total"`
	Question   string   `json:"question"`
	Choices    []string `json:"choices"`
	Difficulty string   `json:"difficulty,omitempty"`
	Retry      bool     `json:"retry"`
}

type answerRequest struct {
	Choice string `json:"choice"`
}

type answerResponse struct {
	Correct       bool    `json:"correct"`
	SecondAttempt bool    `json:"secondAttempt"`
	Advanced      bool    `json:"advanced"`
	CorrectAnswer string  `json:"correctAnswer,omitempty"`
	JumpTo        float64 `json:"jumpTo,omitempty"`
	EmbedURL      string  `json:"embedUrl,omitempty"`
	Score         int     `json:"score"`
	Done          bool    `json:"done"`
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":    internal.ApplicationName,
		"version": version.FromBuild().Version,
		"status":  "ok",
	})
}

func (s *Server) createQuiz(c echo.Context) error {
	var req createQuizRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "malformed request body"})
	}
	if req.URL == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "url is required"})
	}

	result, err := s.generate(c.Request().Context(), req.URL)
	if err != nil {
		log.Warnf("unable to create quiz for %q: %v", req.URL, err)
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Message: err.Error()})
	}

	session := quiz.NewSession(result.VideoID, result.Language, result.Questions)
	s.store.Add(session)

	return c.JSON(http.StatusCreated, sessionToResponse(session))
}

func (s *Server) showQuiz(c echo.Context) error {
	session, ok := s.store.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "quiz not found"})
	}
	return c.JSON(http.StatusOK, sessionToResponse(session))
}

func (s *Server) currentQuestion(c echo.Context) error {
	session, ok := s.store.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "quiz not found"})
	}

	if session.Done() {
		return c.JSON(http.StatusOK, sessionToResponse(session))
	}

	q, choices, err := session.Current()
	if err != nil {
		return c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, questionResponse{
		Index:      session.Index(),
		Total:      len(session.Questions),
		Question:   q.Prompt,
		Choices:    choices,
		Difficulty: q.Difficulty,
		Retry:      session.AwaitingRetry(),
	})
}

func (s *Server) submitAnswer(c echo.Context) error {
	session, ok := s.store.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "quiz not found"})
	}

	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "malformed request body"})
	}

	outcome, err := session.Submit(req.Choice)
	if err != nil {
		return c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
	}

	resp := answerResponse{
		Correct:       outcome.Correct,
		SecondAttempt: outcome.SecondAttempt,
		Advanced:      outcome.Advanced,
		CorrectAnswer: outcome.CorrectAnswer,
		Score:         session.Score(),
		Done:          session.Done(),
	}
	if outcome.JumpTo > 0 || (!outcome.Correct && !outcome.SecondAttempt) {
		resp.JumpTo = outcome.JumpTo.Seconds()
		resp.EmbedURL = video.EmbedURL(session.VideoID, outcome.JumpTo)
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) deleteQuiz(c echo.Context) error {
	if _, ok := s.store.Get(c.Param("id")); !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Message: "quiz not found"})
	}
	s.store.Remove(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func sessionToResponse(session *quiz.Session) quizResponse {
	resp := quizResponse{
		ID:             session.ID,
		VideoID:        session.VideoID,
		WatchURL:       video.WatchURL(session.VideoID),
		Language:       session.Language,
		TotalQuestions: len(session.Questions),
		Index:          session.Index(),
		Score:          session.Score(),
		Done:           session.Done(),
	}
	if session.Done() {
		resp.Percentage = session.Percentage()
		resp.Grade = session.Grade()
	}
	return resp
}

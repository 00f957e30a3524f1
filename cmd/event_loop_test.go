package cmd

import (
	"fmt"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wagoodman/go-partybus"

	"github.com/watchask/watchask/internal/ui"
	"github.com/watchask/watchask/watchask/event"
)

var _ ui.UI = (*stubUI)(nil)

// stubUI records the UI lifecycle and unsubscribes from the bus once it sees
// the terminal event, the same way the real handlers wind down a run.
type stubUI struct {
	t             *testing.T
	terminalEvent partybus.Event
	unsubscribe   func() error
	mock.Mock
}

func (u *stubUI) Setup(unsubscribe func() error) error {
	u.unsubscribe = unsubscribe
	return u.Called(unsubscribe).Error(0)
}

func (u *stubUI) Handle(e partybus.Event) error {
	err := u.Called(e).Error(0)
	if e == u.terminalEvent {
		assert.NoError(u.t, u.unsubscribe())
	}
	return err
}

func (u *stubUI) Teardown(force bool) error {
	return u.Called(force).Error(0)
}

func runEventLoop(t *testing.T, workerErrs <-chan error, signals <-chan os.Signal, subscription *partybus.Subscription, cleanupFn func(), uxs ...ui.UI) error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- eventLoop(workerErrs, signals, subscription, cleanupFn, uxs...)
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not exit")
		return nil
	}
}

func closedErrChan() chan error {
	c := make(chan error)
	close(c)
	return c
}

func TestEventLoopDeliversWorkerEvents(t *testing.T) {
	bus := partybus.NewBus()
	t.Cleanup(bus.Close)
	subscription := bus.Subscribe()

	fetchStarted := partybus.Event{Type: event.TranscriptFetchStarted, Value: "dQw4w9WgXcQ"}
	finished := partybus.Event{Type: event.QuestionGenerationFinished}

	workerErrs := make(chan error)
	go func() {
		bus.Publish(fetchStarted)
		bus.Publish(finished)
		close(workerErrs)
	}()

	ux := &stubUI{t: t, terminalEvent: finished}
	ux.On("Setup", mock.AnythingOfType("func() error")).Return(nil)
	ux.On("Handle", fetchStarted).Return(nil)
	ux.On("Handle", finished).Return(nil)
	ux.On("Teardown", false).Return(nil)

	cleanedUp := false
	assert.NoError(t, runEventLoop(t, workerErrs, nil, subscription, func() { cleanedUp = true }, ux))
	assert.True(t, cleanedUp)
	ux.AssertExpectations(t)
}

func TestEventLoopReturnsWorkerError(t *testing.T) {
	bus := partybus.NewBus()
	t.Cleanup(bus.Close)
	subscription := bus.Subscribe()

	workerErrs := make(chan error, 1)
	workerErrs <- fmt.Errorf("caption download failed")
	close(workerErrs)

	ux := &stubUI{t: t}
	ux.On("Setup", mock.AnythingOfType("func() error")).Return(nil)
	ux.On("Teardown", false).Return(nil)

	err := runEventLoop(t, workerErrs, nil, subscription, func() {}, ux)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caption download failed")
	ux.AssertExpectations(t)
}

func TestEventLoopSignalForcesTeardown(t *testing.T) {
	bus := partybus.NewBus()
	t.Cleanup(bus.Close)
	subscription := bus.Subscribe()

	signals := make(chan os.Signal, 1)
	signals <- syscall.SIGINT

	ux := &stubUI{t: t}
	ux.On("Setup", mock.AnythingOfType("func() error")).Return(nil)
	ux.On("Teardown", true).Return(nil)

	assert.NoError(t, runEventLoop(t, make(chan error), signals, subscription, func() {}, ux))
	ux.AssertNotCalled(t, "Handle", mock.Anything)
	ux.AssertExpectations(t)
}

func TestEventLoopAggregatesHandlerError(t *testing.T) {
	bus := partybus.NewBus()
	t.Cleanup(bus.Close)
	subscription := bus.Subscribe()

	fetchStarted := partybus.Event{Type: event.TranscriptFetchStarted}
	finished := partybus.Event{Type: event.QuestionGenerationFinished}

	workerErrs := make(chan error)
	go func() {
		bus.Publish(fetchStarted)
		bus.Publish(finished)
		close(workerErrs)
	}()

	ux := &stubUI{t: t, terminalEvent: finished}
	ux.On("Setup", mock.AnythingOfType("func() error")).Return(nil)
	ux.On("Handle", fetchStarted).Return(fmt.Errorf("unable to render progress"))
	ux.On("Handle", finished).Return(nil)
	ux.On("Teardown", false).Return(nil)

	err := runEventLoop(t, workerErrs, nil, subscription, func() {}, ux)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to render progress")
	ux.AssertExpectations(t)
}

func TestEventLoopFallsBackToNextUI(t *testing.T) {
	bus := partybus.NewBus()
	t.Cleanup(bus.Close)
	subscription := bus.Subscribe()

	finished := partybus.Event{Type: event.QuestionGenerationFinished}

	workerErrs := make(chan error)
	go func() {
		bus.Publish(finished)
		close(workerErrs)
	}()

	terminal := &stubUI{t: t}
	terminal.On("Setup", mock.AnythingOfType("func() error")).Return(fmt.Errorf("no tty available"))

	logged := &stubUI{t: t, terminalEvent: finished}
	logged.On("Setup", mock.AnythingOfType("func() error")).Return(nil)
	logged.On("Handle", finished).Return(nil)
	logged.On("Teardown", false).Return(nil)

	assert.NoError(t, runEventLoop(t, workerErrs, nil, subscription, func() {}, terminal, logged))

	terminal.AssertNotCalled(t, "Handle", mock.Anything)
	terminal.AssertNotCalled(t, "Teardown", mock.Anything)
	terminal.AssertExpectations(t)
	logged.AssertExpectations(t)
}

func TestEventLoopNoUsableUI(t *testing.T) {
	bus := partybus.NewBus()
	t.Cleanup(bus.Close)
	subscription := bus.Subscribe()

	terminal := &stubUI{t: t}
	terminal.On("Setup", mock.AnythingOfType("func() error")).Return(fmt.Errorf("no tty available"))

	logged := &stubUI{t: t}
	logged.On("Setup", mock.AnythingOfType("func() error")).Return(fmt.Errorf("stderr closed"))

	cleanedUp := false
	err := runEventLoop(t, closedErrChan(), nil, subscription, func() { cleanedUp = true }, terminal, logged)
	assert.EqualError(t, err, "unable to setup any UI")
	assert.True(t, cleanedUp)
	terminal.AssertNotCalled(t, "Teardown", mock.Anything)
	logged.AssertNotCalled(t, "Teardown", mock.Anything)
}

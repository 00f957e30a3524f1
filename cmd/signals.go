package cmd

import (
	"os"
	"os/signal"
	"syscall"
)

// setupSignals returns a channel that receives interrupt and terminate signals
// so the event loop can tear the UI down before exiting.
func setupSignals() <-chan os.Signal {
	c := make(chan os.Signal, 1) // signal.Notify requires a buffered channel

	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	return c
}

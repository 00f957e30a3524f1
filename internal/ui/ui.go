package ui

import (
	"github.com/wagoodman/go-partybus"
)

// UI is a handler of bus events with a lifecycle: Setup is given the bus
// unsubscribe function to invoke once the final event has been handled, and
// Teardown restores any terminal state (forced on interrupt).
type UI interface {
	Setup(unsubscribe func() error) error
	partybus.Handler
	Teardown(force bool) error
}

package internal

import (
	"fmt"
	"os"
)

// IsPipedInput indicates whether stdin is not a character device, meaning the
// user may be piping input (and a dynamic terminal UI should be avoided).
func IsPipedInput() (bool, error) {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to determine if there is piped input: %w", err)
	}

	return fi.Mode()&os.ModeCharDevice == 0, nil
}

package watchaskerr

var (
	// ErrBelowScoreThreshold indicates a finished quiz scored under the configured --fail-below percentage.
	ErrBelowScoreThreshold = NewExpectedErr("quiz score is below the configured threshold")
)

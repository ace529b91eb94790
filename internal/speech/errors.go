package speech

import "errors"

// Common errors for the speech subsystem.
var (
	ErrEngineNotAvailable = errors.New("speech engine is not available")
	ErrEmptyUtterance     = errors.New("utterance text is empty")
	ErrEngineShutdown     = errors.New("speech engine has been shut down")
	ErrAnnouncerClosed    = errors.New("announcer has been closed")
)

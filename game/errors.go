package game

import "errors"

var (
	// ErrLogFileOpen is fatal: a session does not start without its event log
	ErrLogFileOpen = errors.New("failed to open log file")
	// ErrLogWrite reports events that could not be appended to the event log
	ErrLogWrite = errors.New("failed to write log file")
)

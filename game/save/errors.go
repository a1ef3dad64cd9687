package save

import "errors"

var (
	// ErrSaveWrite wraps every failure to persist the player
	ErrSaveWrite = errors.New("failed to save game")
	// ErrSaveRead wraps every failure to restore the player
	ErrSaveRead = errors.New("failed to load game")
	// ErrMalformedSave means save data exists but cannot be parsed
	ErrMalformedSave = errors.New("malformed save data")

	errInvalidName = errors.New("name must be a single word")
)

package db

import "errors"

var (
	errUnknownDriver = errors.New("unknown database driver")
)

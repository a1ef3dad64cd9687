package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariant is returned for a monster name with no preset
	ErrUnknownVariant = errors.New("unknown monster")
	ErrItemNotFound   = errors.New("item not found in inventory")
)

func errUnknownVariant(name string) error {
	return fmt.Errorf("%q: %w", name, ErrUnknownVariant)
}

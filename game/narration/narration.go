// Package narration tells the player what happens. Nothing here is
// authoritative state.
package narration

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Narrator receives human-readable lines. Flush marks the end of a report,
// e.g. one encounter.
type Narrator interface {
	Say(line string)
	Flush(ctx context.Context) error
}

// Console prints every line as soon as it is said
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Say(line string) {
	fmt.Fprintln(c.w, line)
}

func (c *Console) Flush(context.Context) error {
	return nil
}

// Multi fans every line out to all its narrators
type Multi []Narrator

func (m Multi) Say(line string) {
	for _, n := range m {
		n.Say(line)
	}
}

func (m Multi) Flush(ctx context.Context) error {
	var errs []error
	for _, n := range m {
		if err := n.Flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

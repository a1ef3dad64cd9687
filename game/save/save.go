// Package save persists the player as a single whitespace-delimited line:
// "<name> <health> <attack> <defense>". Level and experience are not part of
// the format, a loaded player always starts back at level 1.
package save

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vincent-heng/rpgsim/game/entity"
)

// Store is where a player is saved to and loaded from
type Store interface {
	Save(ctx context.Context, c *entity.Character) error
	Load(ctx context.Context) (*entity.Character, error)
	// Location names the target for narration, e.g. "save.txt"
	Location() string
}

// Encode renders c as a save line, newline included
func Encode(c *entity.Character) (string, error) {
	if c.Name == "" || strings.ContainsAny(c.Name, " \t\r\n") {
		return "", fmt.Errorf("%q: %w", c.Name, errInvalidName)
	}

	return c.Name + " " +
		strconv.Itoa(c.Health) + " " +
		strconv.Itoa(c.Attack) + " " +
		strconv.Itoa(c.Defense) + "\n", nil
}

// Decode parses a save line into a fresh level 1 character
func Decode(line string) (*entity.Character, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return nil, fmt.Errorf("expected 4 fields, got %d: %w", len(fields), ErrMalformedSave)
	}

	values := make([]int, 3)
	for i, label := range []string{"health", "attack", "defense"} {
		value, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", label, fields[i+1], ErrMalformedSave)
		}
		values[i] = value
	}

	return entity.NewCharacter(fields[0], values[0], values[1], values[2]), nil
}

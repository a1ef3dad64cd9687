package entity

import (
	"strconv"

	"golang.org/x/text/cases"
)

// Variant names one of the monster presets
type Variant string

const (
	Goblin   Variant = "Goblin"
	Skeleton Variant = "Skeleton"
	Dragon   Variant = "Dragon"
)

type preset struct {
	health  int
	attack  int
	defense int
}

var (
	presets = map[Variant]preset{ //nolint:gochecknoglobals
		Goblin:   {health: 50, attack: 10, defense: 5},
		Skeleton: {health: 70, attack: 15, defense: 8},
		Dragon:   {health: 150, attack: 30, defense: 15},
	}

	// order in which the bestiary lists them
	variants = []Variant{Goblin, Skeleton, Dragon} //nolint:gochecknoglobals
)

// Monster represents an opponent, created fresh for each battle
type Monster struct {
	Combatant
	Variant Variant
}

func (m Monster) String() string {
	return "Monster: " + m.Name +
		", HP: " + strconv.Itoa(m.Health) +
		", Attack: " + strconv.Itoa(m.Attack) +
		", Defense: " + strconv.Itoa(m.Defense)
}

// NewMonster spawns a monster with the stats of the given preset
func NewMonster(v Variant) (*Monster, error) {
	p, ok := presets[v]
	if !ok {
		return nil, errUnknownVariant(string(v))
	}

	return &Monster{
		Combatant: Combatant{
			Name:    string(v),
			Health:  p.health,
			Attack:  p.attack,
			Defense: p.defense,
		},
		Variant: v,
	}, nil
}

// Variants lists every preset
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// ParseVariant finds a preset by name, ignoring case
func ParseVariant(name string) (Variant, error) {
	fold := cases.Fold()
	folded := fold.String(name)
	for _, v := range variants {
		if fold.String(string(v)) == folded {
			return v, nil
		}
	}
	return "", errUnknownVariant(name)
}

package entity

import (
	"strconv"
)

const (
	// MaxHealth is the ceiling for player healing
	MaxHealth = 100

	experiencePerLevel = 100
)

// Combatant holds what the player and monsters share in a battle
type Combatant struct {
	Name    string
	Health  int
	Attack  int
	Defense int
}

// IsDefeated reports whether health dropped below zero. A combatant at
// exactly 0 HP is still standing.
func (c *Combatant) IsDefeated() bool {
	return c.Health < 0
}

// Character represents the player
type Character struct {
	Combatant
	Level      int
	Experience int
}

func (c Character) String() string {
	return "Name: " + c.Name +
		", HP: " + strconv.Itoa(c.Health) +
		", Attack: " + strconv.Itoa(c.Attack) +
		", Defense: " + strconv.Itoa(c.Defense) +
		", Level: " + strconv.Itoa(c.Level) +
		", Experience: " + strconv.Itoa(c.Experience)
}

// NewCharacter builds a level 1 character without experience
func NewCharacter(name string, health, attack, defense int) *Character {
	return &Character{
		Combatant: Combatant{
			Name:    name,
			Health:  health,
			Attack:  attack,
			Defense: defense,
		},
		Level:      1,
		Experience: 0,
	}
}

// NewDefaultCharacter is the stat line every new session starts with
func NewDefaultCharacter(name string) *Character {
	return NewCharacter(name, 100, 20, 10)
}

// Heal adds amount to health, capped at MaxHealth, and returns the new health
func (c *Character) Heal(amount int) int {
	c.Health += amount
	if c.Health > MaxHealth {
		c.Health = MaxHealth
	}
	return c.Health
}

// GainExperience adds experience and converts every full 100 points into a
// level. It returns the number of levels gained.
func (c *Character) GainExperience(amount int) int {
	c.Experience += amount

	nbLevelUps := 0
	for c.Experience >= experiencePerLevel {
		c.Level++
		c.Experience -= experiencePerLevel
		nbLevelUps++
	}
	return nbLevelUps
}

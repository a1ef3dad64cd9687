package game

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/vincent-heng/rpgsim/game/entity"
)

const startingItem = "Health Potion"

// the fixed order of a session's encounters
var encounters = []entity.Variant{entity.Goblin, entity.Skeleton, entity.Dragon} //nolint:gochecknoglobals

// Run plays the whole session: start, every encounter, then save and load
// the player back. Persistence failures are reported and the session goes
// on; they are returned together at the end.
func (g *Game) Run(ctx context.Context) error {
	log.Info().Str("sessionID", g.sessionID).Str("player", g.player.Name).Msg("session started")

	g.Start()
	g.flush(ctx)

	var errs []error
	for _, variant := range encounters {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		if _, err := g.Fight(ctx, variant); err != nil {
			errs = append(errs, err)
		}
	}

	if err := g.SaveGame(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := g.LoadGame(ctx); err != nil {
		errs = append(errs, err)
	}

	g.narrator.Say(g.player.String())
	g.flush(ctx)

	log.Info().Str("sessionID", g.sessionID).Int("errors", len(errs)).Msg("session done")
	return errors.Join(errs...)
}

// Start greets the player and hands out the starting item
func (g *Game) Start() {
	g.narrator.Say("Welcome to the RPG Game!")
	g.narrator.Say(g.player.String())
	g.AddItem(startingItem)
}

func (g *Game) AddItem(item string) {
	g.inventory.Add(item)
	g.narrator.Say("Added item: " + item)
}

func (g *Game) RemoveItem(item string) error {
	if err := g.inventory.Remove(item); err != nil {
		g.narrator.Say("Item not found in inventory.")
		return err
	}
	g.narrator.Say("Removed item: " + item)
	return nil
}

// Heal restores the player's health, capped at entity.MaxHealth
func (g *Game) Heal(amount int) int {
	health := g.player.Heal(amount)
	g.narrator.Say(g.player.Name + " heals for " + strconv.Itoa(amount) + " HP!")
	return health
}

// SaveGame persists the player's name, health, attack and defense
func (g *Game) SaveGame(ctx context.Context) error {
	if err := g.store.Save(ctx, g.player); err != nil {
		log.Error().Err(err).Str("sessionID", g.sessionID).Str("location", g.store.Location()).Msg("cannot save game")
		return err
	}

	g.narrator.Say("Game saved to " + g.store.Location())
	return nil
}

// LoadGame replaces the player with the saved one, back at level 1. The
// current player is left untouched on failure.
func (g *Game) LoadGame(ctx context.Context) error {
	c, err := g.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Str("sessionID", g.sessionID).Str("location", g.store.Location()).Msg("cannot load game")
		return err
	}

	g.player = c
	g.narrator.Say("Game loaded from " + g.store.Location())
	return nil
}

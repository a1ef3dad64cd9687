package game

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vincent-heng/rpgsim/config"
	"github.com/vincent-heng/rpgsim/game/db"
	"github.com/vincent-heng/rpgsim/game/entity"
	"github.com/vincent-heng/rpgsim/game/eventlog"
	"github.com/vincent-heng/rpgsim/game/narration"
	"github.com/vincent-heng/rpgsim/game/save"
)

const defaultMaxRounds = 1000

// History keeps a record of every encounter fought
type History interface {
	RecordEncounter(ctx context.Context, e db.Encounter) error
}

// Deps are the collaborators of a Game. Store defaults to a save file at
// SaveFile, Narrator to the console. A nil History records nothing.
type Deps struct {
	Store    save.Store
	History  History
	Narrator narration.Narrator
}

// Game is one play session: a player, their inventory and the event log
type Game struct {
	config.Config

	sessionID string
	player    *entity.Character
	inventory *entity.Inventory
	events    *eventlog.Log
	store     save.Store
	history   History
	narrator  narration.Narrator
}

// New opens the event log and creates the session's player
func New(conf config.Config, deps Deps) (*Game, error) {
	events, err := eventlog.Open(conf.LogFile)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLogFileOpen, conf.LogFile, err)
	}

	if conf.MaxRounds < 1 {
		conf.MaxRounds = defaultMaxRounds
	}
	if deps.Store == nil {
		deps.Store = save.NewFileStore(conf.SaveFile)
	}
	if deps.Narrator == nil {
		deps.Narrator = narration.NewConsole(os.Stdout)
	}

	return &Game{
		Config:    conf,
		sessionID: uuid.New().String(),
		player:    entity.NewDefaultCharacter(conf.PlayerName),
		inventory: &entity.Inventory{},
		events:    events,
		store:     deps.Store,
		history:   deps.History,
		narrator:  deps.Narrator,
	}, nil
}

// SessionID tags the diagnostics and history records of this session
func (g *Game) SessionID() string {
	return g.sessionID
}

// Player returns a copy of the current player
func (g *Game) Player() entity.Character {
	return *g.player
}

func (g *Game) Inventory() []string {
	return g.inventory.Items()
}

// Close releases the event log
func (g *Game) Close() error {
	return g.events.Close()
}

func (g *Game) flush(ctx context.Context) {
	if err := g.narrator.Flush(ctx); err != nil {
		log.Error().Err(err).Str("sessionID", g.sessionID).Msg("cannot flush narration")
	}
}

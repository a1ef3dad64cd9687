package main

import (
	"context"
	"io"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/vincent-heng/rpgsim/game"
	"github.com/vincent-heng/rpgsim/game/db"
	"github.com/vincent-heng/rpgsim/game/narration"
	"github.com/vincent-heng/rpgsim/game/save"
)

const pingTimeout = 5 * time.Second

// newGame wires the collaborators picked by the configuration. Optional
// backends that cannot be reached are skipped with a warning.
func (a *app) newGame(ctx context.Context, out io.Writer) (*game.Game, func(), error) {
	store, closeStore := a.newStore(ctx)
	history := a.newHistory()

	deps := game.Deps{
		Store:    store,
		Narrator: a.newNarrator(out),
	}
	if history != nil {
		deps.History = history
	}

	g, err := game.New(a.conf, deps)
	if err != nil {
		closeStore()
		closeHistory(history)
		return nil, nil, err
	}

	cleanup := func() {
		if e := g.Close(); e != nil {
			log.Error().Err(e).Msg("cannot close event log")
		}
		closeStore()
		closeHistory(history)
	}
	return g, cleanup, nil
}

func (a *app) newStore(ctx context.Context) (save.Store, func()) {
	fileStore := save.NewFileStore(a.conf.SaveFile)
	if a.conf.Redis.URL == "" {
		return fileStore, func() {}
	}

	opts, err := redis.ParseURL(a.conf.Redis.URL)
	if err != nil {
		log.Warn().Err(err).Msg("cannot parse REDIS_URL, saving to file")
		return fileStore, func() {}
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Msg("cannot reach redis, saving to file")
		_ = client.Close()
		return fileStore, func() {}
	}

	log.Debug().Str("addr", opts.Addr).Msg("saving to redis")
	return save.NewRedisStore(client, a.conf.SaveFile), func() {
		if e := client.Close(); e != nil {
			log.Error().Err(e).Msg("cannot close redis client")
		}
	}
}

func (a *app) newHistory() *db.DB {
	if a.conf.DB.Driver == "" {
		return nil
	}

	database, err := db.New(a.conf.DB.Driver, a.conf.DB.ConnectionString())
	if err != nil {
		log.Warn().Err(err).Str("driver", a.conf.DB.Driver).Msg("cannot open encounter history, not recording")
		return nil
	}
	return database
}

func closeHistory(history *db.DB) {
	if history == nil {
		return
	}
	if e := history.Close(); e != nil {
		log.Error().Err(e).Msg("cannot close encounter history")
	}
}

func (a *app) newNarrator(out io.Writer) narration.Narrator {
	console := narration.NewConsole(out)
	if !a.conf.Discord.Enabled() {
		return console
	}

	dg, err := discordgo.New("Bot " + a.conf.Discord.Token)
	if err != nil {
		log.Warn().Err(err).Msg("cannot create discord session, narrating to console only")
		return console
	}
	return narration.Multi{console, narration.NewDiscord(dg, a.conf.Discord.ChannelID)}
}

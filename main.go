// Package main is the entry point of the combat simulator
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vincent-heng/rpgsim/config"
)

type app struct {
	conf config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "rpgsim",
		Short: "Turn-based combat simulator",
		Long: `rpgsim plays a fixed session: a hero fights a Goblin, a Skeleton and a Dragon,
then is saved and loaded back. Every attack is appended to the event log.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSession,
	}

	rootCmd.AddCommand(a.bestiaryCmd(), a.fightCmd(), a.showSaveCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	envErr := godotenv.Load()

	conf, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	a.conf = conf

	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		log.Warn().Str("level", conf.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	switch {
	case envErr == nil:
		log.Debug().Msg("loaded .env file")
	case errors.Is(envErr, fs.ErrNotExist):
		log.Debug().Msg("no .env file found")
	default:
		log.Warn().Err(envErr).Msg("cannot read .env file")
	}
	return nil
}

func (a *app) runSession(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, cleanup, err := a.newGame(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer cleanup()

	return g.Run(ctx)
}

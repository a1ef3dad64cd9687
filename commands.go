package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vincent-heng/rpgsim/game/entity"
)

type bestiaryEntry struct {
	Name    string `yaml:"name"`
	Health  int    `yaml:"health"`
	Attack  int    `yaml:"attack"`
	Defense int    `yaml:"defense"`
}

func (a *app) bestiaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bestiary",
		Short: "List the monsters and their stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var entries []bestiaryEntry
			for _, v := range entity.Variants() {
				m, err := entity.NewMonster(v)
				if err != nil {
					return err
				}
				entries = append(entries, bestiaryEntry{
					Name:    m.Name,
					Health:  m.Health,
					Attack:  m.Attack,
					Defense: m.Defense,
				})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(entries); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func (a *app) fightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fight <monster>",
		Short: "Fight a single monster with a fresh hero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := entity.ParseVariant(args[0])
			if err != nil {
				return err
			}

			g, cleanup, err := a.newGame(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := g.Fight(cmd.Context(), variant)
			player := g.Player()
			fmt.Fprintf(cmd.OutOrStdout(), "Outcome: %s after %d rounds\n", result.Outcome, result.Rounds)
			fmt.Fprintln(cmd.OutOrStdout(), player.String())
			return err
		},
	}
}

func (a *app) showSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-save",
		Short: "Display the saved hero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore := a.newStore(cmd.Context())
			defer closeStore()

			c, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
			return nil
		},
	}
}

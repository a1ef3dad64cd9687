package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vincent-heng/rpgsim/game/db"
	"github.com/vincent-heng/rpgsim/game/entity"
)

const victoryExperience = 50

// Outcome is the state of a battle
type Outcome int

const (
	Ongoing Outcome = iota
	PlayerVictory
	PlayerDefeat
	// Stalemate ends battles where nobody can hurt anybody, or that hit the
	// round cap
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case PlayerVictory:
		return "victory"
	case PlayerDefeat:
		return "defeat"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// BattleResult sums up one encounter
type BattleResult struct {
	EncounterID      string
	Monster          entity.Variant
	Outcome          Outcome
	Rounds           int
	ExperienceGained int
	LevelsGained     int
}

// Fight runs an encounter between the player and a fresh monster. Losing is
// an outcome, not an error: the player keeps whatever health they ended with.
// The returned error only reports event log failures, the result is valid
// either way.
func (g *Game) Fight(ctx context.Context, variant entity.Variant) (BattleResult, error) {
	monster, err := entity.NewMonster(variant)
	if err != nil {
		return BattleResult{}, err
	}

	result := BattleResult{
		EncounterID: uuid.New().String(),
		Monster:     variant,
	}
	logger := log.With().
		Str("sessionID", g.sessionID).
		Str("encounterID", result.EncounterID).
		Str("monster", monster.Name).
		Logger()
	logger.Debug().Int("playerHealth", g.player.Health).Msg("encounter started")

	g.narrator.Say("A wild " + monster.Name + " appeared!")
	g.narrator.Say(monster.String())

	var logErrs []error
	report := func(line string) {
		g.narrator.Say(line)
		if e := g.events.Append(line); e != nil {
			logErrs = append(logErrs, e)
		}
	}

	result.Outcome, result.Rounds = runBattle(&g.player.Combatant, &monster.Combatant, g.MaxRounds, report)

	switch result.Outcome {
	case PlayerVictory:
		g.narrator.Say(monster.Name + " has been defeated!")
		result.ExperienceGained = victoryExperience
		result.LevelsGained = g.gainExperience(victoryExperience)
	case PlayerDefeat:
		g.narrator.Say(g.player.Name + " has died!")
	case Stalemate:
		g.narrator.Say(g.player.Name + " and " + monster.Name + " cannot finish each other off.")
	}

	logger.Info().
		Str("outcome", result.Outcome.String()).
		Int("rounds", result.Rounds).
		Int("playerHealth", g.player.Health).
		Int("level", g.player.Level).
		Msg("encounter done")

	g.recordEncounter(ctx, result)
	g.flush(ctx)

	if len(logErrs) > 0 {
		return result, fmt.Errorf("%w: %w", ErrLogWrite, errors.Join(logErrs...))
	}
	return result, nil
}

func (g *Game) recordEncounter(ctx context.Context, result BattleResult) {
	if g.history == nil {
		return
	}

	err := g.history.RecordEncounter(ctx, db.Encounter{
		SessionID:        g.sessionID,
		EncounterID:      result.EncounterID,
		Monster:          string(result.Monster),
		Outcome:          result.Outcome.String(),
		Rounds:           result.Rounds,
		PlayerHealth:     g.player.Health,
		ExperienceGained: result.ExperienceGained,
		Level:            g.player.Level,
	})
	if err != nil {
		log.Error().Err(err).Str("encounterID", result.EncounterID).Msg("cannot record encounter")
	}
}

func (g *Game) gainExperience(amount int) int {
	levelBefore := g.player.Level
	nbLevelUps := g.player.GainExperience(amount)
	for level := levelBefore + 1; level <= g.player.Level; level++ {
		g.narrator.Say(g.player.Name + " leveled up to level " + strconv.Itoa(level) + "!")
	}
	return nbLevelUps
}

// runBattle plays rounds until one side is defeated, nobody can deal damage,
// or maxRounds is reached. A player who is already defeated does not fight.
func runBattle(player, monster *entity.Combatant, maxRounds int, report func(string)) (Outcome, int) {
	if player.IsDefeated() {
		return PlayerDefeat, 0
	}

	outcome := Ongoing
	rounds := 0
	for outcome == Ongoing && rounds < maxRounds {
		rounds++
		outcome = playRound(player, monster, report)
	}

	if outcome == Ongoing {
		outcome = Stalemate
	}
	return outcome, rounds
}

func playRound(player, monster *entity.Combatant, report func(string)) Outcome {
	dealt := exchange(player, monster, report)
	if monster.IsDefeated() {
		return PlayerVictory
	}

	taken := exchange(monster, player, report)
	if player.IsDefeated() {
		return PlayerDefeat
	}

	if dealt == 0 && taken == 0 {
		return Stalemate
	}
	return Ongoing
}

func exchange(attacker, defender *entity.Combatant, report func(string)) int {
	damage := entity.ResolveAttack(attacker, defender)
	report(writeActionReport(attacker, defender, damage))
	return damage
}

func writeActionReport(attacker, defender *entity.Combatant, damage int) string {
	if damage == 0 {
		return attacker.Name + "'s attack has no effect!"
	}
	return attacker.Name +
		" attacks " +
		defender.Name +
		" for " +
		strconv.Itoa(damage) +
		" damage!"
}

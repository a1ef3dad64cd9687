package entity

// ResolveAttack applies attacker.Attack - defender.Defense to the defender's
// health when positive. It returns the damage dealt, 0 meaning no effect.
func ResolveAttack(attacker, defender *Combatant) int {
	damage := attacker.Attack - defender.Defense
	if damage <= 0 {
		return 0
	}
	defender.Health -= damage
	return damage
}

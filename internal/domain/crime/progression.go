package crime

// ApplyProgression adds gained XP to the aggregate and applies at most
// one level-up: the level increments, the surplus XP carries over, the
// next threshold grows by 1.5x and the stat caps increase. Gains large
// enough to clear two thresholds still only grant one level per
// resolution.
func ApplyProgression(state *CharacterState, xpGained int) bool {
	if xpGained <= 0 {
		return false
	}
	state.XP += int64(xpGained)
	if state.XPNeeded <= 0 || state.XP < state.XPNeeded {
		return false
	}
	state.XP -= state.XPNeeded
	state.XPNeeded = state.XPNeeded * XPGrowthNumerator / XPGrowthDenominator
	state.Level++
	state.MaxEnergy += LevelUpEnergyBonus
	state.MaxHealth += LevelUpHealthBonus
	return true
}

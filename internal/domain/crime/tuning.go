package crime

const (
	// Crimes are never guaranteed, even with maximal city bonuses.
	MaxEffectiveRate = 99

	RollUpperBound = 100

	// XP needed for the next level grows by 1.5x on each level-up.
	XPGrowthNumerator   = 3
	XPGrowthDenominator = 2

	LevelUpEnergyBonus = 5
	LevelUpHealthBonus = 10

	SuccessReputationGain = 1

	DefaultMaxEnergy = 100
	DefaultMaxHealth = 100
	DefaultXPNeeded  = 100
)

package crime

// EffectiveRate combines a crime's base success rate with the city
// success bonus, clamped to [0, MaxEffectiveRate].
func EffectiveRate(baseRate, cityBonus int) int {
	rate := baseRate + cityBonus
	if rate > MaxEffectiveRate {
		return MaxEffectiveRate
	}
	if rate < 0 {
		return 0
	}
	return rate
}

// EvaluateSuccess rolls a uniform value in [0, RollUpperBound) and
// succeeds iff it lands below the effective rate. A rate of zero can
// never succeed because the draw is never negative.
func EvaluateSuccess(def CrimeDefinition, mod CityModifier, src Source) bool {
	rate := EffectiveRate(def.BaseSuccessRate, mod.SuccessBonus)
	if rate <= 0 {
		return false
	}
	return src.IntN(RollUpperBound) < rate
}

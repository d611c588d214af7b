package crime

import "time"

// scaleByIncomeBonus applies the city income multiplier (1 + bonus/100)
// with integer flooring.
func scaleByIncomeBonus(amount int64, incomeBonus int) int64 {
	return amount * int64(100+incomeBonus) / 100
}

// DrawReward picks a reward within the crime's range. The income
// multiplier is applied to both bounds before the draw, so the result
// never falls below the scaled floor; this order is fixed for
// reproducibility.
func DrawReward(def CrimeDefinition, mod CityModifier, src Source) int64 {
	lo := scaleByIncomeBonus(def.MinReward, mod.IncomeBonus)
	hi := scaleByIncomeBonus(def.MaxReward, mod.IncomeBonus)
	if hi <= lo {
		return lo
	}
	return lo + int64(src.IntN(int(hi-lo+1)))
}

// JailReleaseTime computes when a failed attempt's sentence ends.
func JailReleaseTime(def CrimeDefinition, now time.Time) time.Time {
	return now.Add(time.Duration(def.JailMinutes) * time.Minute)
}

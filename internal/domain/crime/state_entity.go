package crime

import "time"

// ReconcileJail clears an elapsed sentence. Jail release is lazy:
// there is no timer, the flag is reconciled the next time the
// character is read for a jail-gated action.
func (s *CharacterState) ReconcileJail(now time.Time) bool {
	if !s.Jailed || s.JailReleaseAt.After(now) {
		return false
	}
	s.Jailed = false
	s.JailReleaseAt = time.Time{}
	return true
}

// InJail reports whether the sentence is still running at the given time.
func (s *CharacterState) InJail(now time.Time) bool {
	return s.Jailed && s.JailReleaseAt.After(now)
}

// CreditReward routes the payout to the dirty pool for illicit crimes
// and the clean pool otherwise.
func (s *CharacterState) CreditReward(amount int64, illicit bool) {
	if amount <= 0 {
		return
	}
	if illicit {
		s.DirtyCash += amount
		return
	}
	s.Cash += amount
}

func (s *CharacterState) SpendEnergy(cost int) bool {
	if s.Energy < cost {
		return false
	}
	s.Energy -= cost
	return true
}

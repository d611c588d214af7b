package crime

import (
	"fmt"
	"time"
)

// ResolutionService is the pure state-transition half of the engine.
// Preconditions (jail status, energy) are the orchestrator's job; by
// the time Resolve runs the attempt is committed and energy is spent
// regardless of the roll.
type ResolutionService struct{}

func (ResolutionService) Resolve(state CharacterState, def CrimeDefinition, mod CityModifier, now time.Time, src Source) ResolutionResult {
	next := state
	next.UpdatedAt = now
	next.ReconcileJail(now)
	next.SpendEnergy(def.EnergyCost)

	outcome := ResolutionOutcome{
		CrimeID:    def.ID,
		OccurredAt: now,
	}

	var event GameEvent
	if EvaluateSuccess(def, mod, src) {
		reward := DrawReward(def, mod, src)
		next.CreditReward(reward, def.Illicit)
		next.Reputation += SuccessReputationGain
		leveled := ApplyProgression(&next, def.XPReward)

		outcome.Success = true
		outcome.Reward = reward
		outcome.XPGained = def.XPReward
		outcome.LeveledUp = leveled

		event = GameEvent{
			Type:       EventCrimeSuccess,
			Message:    fmt.Sprintf("%s pulled off %s and pocketed $%d", next.Name, def.Name, reward),
			ActorID:    next.CharacterID,
			OccurredAt: now,
			Payload: map[string]any{
				"crime_id":   def.ID,
				"reward":     reward,
				"leveled_up": leveled,
			},
		}
	} else {
		next.Jailed = true
		next.JailReleaseAt = JailReleaseTime(def, now)

		outcome.JailMinutes = def.JailMinutes

		event = GameEvent{
			Type:       EventCrimeJailed,
			Message:    fmt.Sprintf("%s got busted during %s and is locked up for %d minutes", next.Name, def.Name, def.JailMinutes),
			ActorID:    next.CharacterID,
			OccurredAt: now,
			Payload: map[string]any{
				"crime_id":     def.ID,
				"jail_minutes": def.JailMinutes,
			},
		}
	}

	next.Version++

	return ResolutionResult{
		UpdatedState: next,
		Outcome:      outcome,
		Events:       []GameEvent{event},
	}
}

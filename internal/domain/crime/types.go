package crime

import "time"

// CrimeDefinition is a static rules-table entry. Definitions are
// immutable at runtime; the catalog validates them once on load.
type CrimeDefinition struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	EnergyCost      int    `json:"energy_cost" yaml:"energy_cost"`
	MinReward       int64  `json:"min_reward" yaml:"min_reward"`
	MaxReward       int64  `json:"max_reward" yaml:"max_reward"`
	BaseSuccessRate int    `json:"base_success_rate" yaml:"base_success_rate"`
	XPReward        int    `json:"xp_reward" yaml:"xp_reward"`
	JailMinutes     int    `json:"jail_minutes" yaml:"jail_minutes"`
	Illicit         bool   `json:"illicit" yaml:"illicit"`
}

// CityModifier adjusts crime outcomes for a character's current city.
// SuccessBonus is additive percentage points; IncomeBonus is a percent
// applied as a 1+b/100 multiplier to the reward range.
type CityModifier struct {
	SuccessBonus int `json:"success_bonus" yaml:"success_bonus"`
	IncomeBonus  int `json:"income_bonus" yaml:"income_bonus"`
}

type CharacterState struct {
	CharacterID   string    `json:"character_id"`
	Name          string    `json:"name"`
	Level         int       `json:"level"`
	XP            int64     `json:"xp"`
	XPNeeded      int64     `json:"xp_needed"`
	Energy        int       `json:"energy"`
	MaxEnergy     int       `json:"max_energy"`
	Health        int       `json:"health"`
	MaxHealth     int       `json:"max_health"`
	Reputation    int       `json:"reputation"`
	Cash          int64     `json:"cash"`
	DirtyCash     int64     `json:"dirty_cash"`
	City          string    `json:"city,omitempty"`
	Jailed        bool      `json:"jailed"`
	JailReleaseAt time.Time `json:"jail_release_at,omitzero"`
	Version       int64     `json:"version"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ResolutionOutcome is the ephemeral result of a single crime attempt.
// It is returned to the caller and recorded as the audit row.
type ResolutionOutcome struct {
	CrimeID     string    `json:"crime_id"`
	Success     bool      `json:"success"`
	Reward      int64     `json:"reward,omitempty"`
	JailMinutes int       `json:"jail_minutes,omitempty"`
	XPGained    int       `json:"xp_gained"`
	LeveledUp   bool      `json:"leveled_up"`
	OccurredAt  time.Time `json:"occurred_at"`
}

const (
	EventCrimeSuccess = "crime_success"
	EventCrimeJailed  = "crime_jailed"
)

// GameEvent is an append-only public feed entry.
type GameEvent struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Message    string         `json:"message"`
	ActorID    string         `json:"actor_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// ResolutionResult bundles the updated aggregate with the outcome and
// the feed events produced by one resolution.
type ResolutionResult struct {
	UpdatedState CharacterState    `json:"updated_state"`
	Outcome      ResolutionOutcome `json:"outcome"`
	Events       []GameEvent       `json:"events"`
}

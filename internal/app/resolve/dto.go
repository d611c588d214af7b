package resolve

import "undercity/internal/domain/crime"

type Request struct {
	CharacterID    string
	CrimeID        string
	IdempotencyKey string
}

type Response struct {
	Outcome      crime.ResolutionOutcome `json:"outcome"`
	UpdatedState crime.CharacterState    `json:"updated_state"`
	Events       []crime.GameEvent       `json:"events"`
}

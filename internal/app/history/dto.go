package history

import (
	"time"

	"undercity/internal/domain/crime"
)

type Request struct {
	CharacterID string
	Limit       int
}

type Entry struct {
	Outcome   crime.ResolutionOutcome `json:"outcome"`
	AppliedAt time.Time               `json:"applied_at"`
}

type Response struct {
	Entries []Entry `json:"entries"`
}

package status

import "undercity/internal/domain/crime"

type Request struct {
	CharacterID string
}

type Response struct {
	State crime.CharacterState `json:"state"`
}

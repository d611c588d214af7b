package feed

import "undercity/internal/domain/crime"

type Request struct {
	Limit int
}

type Response struct {
	Events []crime.GameEvent `json:"events"`
}

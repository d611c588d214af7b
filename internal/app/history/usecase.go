package history

import (
	"context"
	"errors"
	"strings"

	"undercity/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid history request")

const defaultLimit = 20

type UseCase struct {
	History ports.CrimeHistoryRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CharacterID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	records, err := u.History.ListByCharacterID(ctx, req.CharacterID, limit)
	if err != nil {
		return Response{}, err
	}

	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Entry{
			Outcome:   r.Outcome,
			AppliedAt: r.AppliedAt,
		})
	}
	return Response{Entries: entries}, nil
}

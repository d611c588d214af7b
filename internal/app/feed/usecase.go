package feed

import (
	"context"

	"undercity/internal/app/ports"
)

const defaultLimit = 50

type UseCase struct {
	Events ports.GameEventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	events, err := u.Events.ListRecent(ctx, limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Events: events}, nil
}

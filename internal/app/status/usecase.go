package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"undercity/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Characters ports.CharacterRepository
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CharacterID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.Characters.GetByID(ctx, req.CharacterID)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	// View-level jail reconcile: an elapsed sentence reads as released
	// here; the stored flag clears on the character's next resolution.
	state.ReconcileJail(nowFn())

	return Response{State: state}, nil
}

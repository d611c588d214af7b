package resolve

import (
	"context"
	"errors"
	"strings"
	"time"

	"undercity/internal/app/ports"
	"undercity/internal/domain/crime"

	"github.com/google/uuid"
)

// conflictAttempts bounds the automatic retry after losing the
// per-character version race: one retry on a fresh read, then the
// caller sees the conflict as a transient error.
const conflictAttempts = 2

// UseCase is the resolution orchestrator. One Execute call performs a
// single atomic state transition: the conditional character write, the
// audit row and the feed rows all commit in the same transaction.
type UseCase struct {
	TxManager  ports.TxManager
	Characters ports.CharacterRepository
	History    ports.CrimeHistoryRepository
	Events     ports.GameEventRepository
	Catalog    *crime.Catalog
	Resolver   crime.ResolutionService
	Rand       crime.Source
	Metrics    ports.ResolutionMetrics
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.CharacterID = strings.TrimSpace(req.CharacterID)
	req.CrimeID = strings.TrimSpace(req.CrimeID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.CharacterID == "" || req.CrimeID == "" || req.IdempotencyKey == "" {
		return Response{}, ErrInvalidRequest
	}

	// Unknown crime ids are rejected before any character state is read.
	def, err := u.Catalog.ByID(req.CrimeID)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	src := u.Rand
	if src == nil {
		src = crime.SystemSource{}
	}

	var out Response
	for attempt := 0; attempt < conflictAttempts; attempt++ {
		err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			return u.resolveInTx(txCtx, req, def, nowFn(), src, &out)
		})
		if err == nil || !errors.Is(err, ports.ErrConflict) {
			break
		}
	}
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordResolved(out.Outcome.Success)
	}
	return out, nil
}

func (u UseCase) resolveInTx(ctx context.Context, req Request, def crime.CrimeDefinition, now time.Time, src crime.Source, out *Response) error {
	prior, err := u.History.GetByIdempotencyKey(ctx, req.CharacterID, req.IdempotencyKey)
	if err == nil && prior != nil {
		state, err := u.Characters.GetByID(ctx, req.CharacterID)
		if err != nil {
			return err
		}
		*out = Response{Outcome: prior.Outcome, UpdatedState: state}
		return nil
	}
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return err
	}

	state, err := u.Characters.GetByID(ctx, req.CharacterID)
	if err != nil {
		return err
	}

	// Preconditions: nothing is mutated or persisted until all pass.
	state.ReconcileJail(now)
	if state.InJail(now) {
		return &CurrentlyJailedError{ReleaseAt: state.JailReleaseAt}
	}
	if state.Energy < def.EnergyCost {
		return &InsufficientEnergyError{Required: def.EnergyCost, Available: state.Energy}
	}

	result := u.Resolver.Resolve(state, def, u.Catalog.CityModifier(state.City), now, src)

	if err := u.Characters.SaveWithVersion(ctx, result.UpdatedState, state.Version); err != nil {
		return err
	}

	for i := range result.Events {
		result.Events[i].ID = uuid.NewString()
	}

	record := ports.CrimeHistoryRecord{
		CharacterID:    req.CharacterID,
		IdempotencyKey: req.IdempotencyKey,
		Outcome:        result.Outcome,
		AppliedAt:      now,
	}
	if err := u.History.Append(ctx, record); err != nil {
		return err
	}
	if err := u.Events.Publish(ctx, result.Events); err != nil {
		return err
	}

	*out = Response{
		Outcome:      result.Outcome,
		UpdatedState: result.UpdatedState,
		Events:       result.Events,
	}
	return nil
}

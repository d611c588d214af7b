package memory

import (
	"context"

	"undercity/internal/app/ports"
	"undercity/internal/domain/crime"
)

type CharacterRepo struct {
	store *Store
}

func NewCharacterRepo(store *Store) CharacterRepo {
	return CharacterRepo{store: store}
}

func (r CharacterRepo) GetByID(_ context.Context, characterID string) (crime.CharacterState, error) {
	state, ok := r.store.characters[characterID]
	if !ok {
		return crime.CharacterState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r CharacterRepo) SaveWithVersion(_ context.Context, state crime.CharacterState, expectedVersion int64) error {
	current, ok := r.store.characters[state.CharacterID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.characters[state.CharacterID] = state
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.characters[state.CharacterID] = state
	return nil
}

func (r CharacterRepo) RegenerateEnergy(_ context.Context, amount int) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var changed int64
	for id, state := range r.store.characters {
		if state.Energy >= state.MaxEnergy {
			continue
		}
		state.Energy += amount
		if state.Energy > state.MaxEnergy {
			state.Energy = state.MaxEnergy
		}
		state.Version++
		r.store.characters[id] = state
		changed++
	}
	return changed, nil
}

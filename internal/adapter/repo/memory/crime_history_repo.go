package memory

import (
	"context"

	"undercity/internal/app/ports"
)

type CrimeHistoryRepo struct {
	store *Store
}

func NewCrimeHistoryRepo(store *Store) CrimeHistoryRepo {
	return CrimeHistoryRepo{store: store}
}

func (r CrimeHistoryRepo) GetByIdempotencyKey(_ context.Context, characterID, key string) (*ports.CrimeHistoryRecord, error) {
	record, ok := r.store.history[historyKey(characterID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &record, nil
}

func (r CrimeHistoryRepo) Append(_ context.Context, record ports.CrimeHistoryRecord) error {
	r.store.history[historyKey(record.CharacterID, record.IdempotencyKey)] = record
	r.store.byChar[record.CharacterID] = append(r.store.byChar[record.CharacterID], record)
	return nil
}

func (r CrimeHistoryRepo) ListByCharacterID(_ context.Context, characterID string, limit int) ([]ports.CrimeHistoryRecord, error) {
	records := r.store.byChar[characterID]
	out := make([]ports.CrimeHistoryRecord, 0, len(records))
	// Newest first.
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

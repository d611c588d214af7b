package memory

import (
	"context"

	"undercity/internal/domain/crime"
)

type GameEventRepo struct {
	store *Store
}

func NewGameEventRepo(store *Store) GameEventRepo {
	return GameEventRepo{store: store}
}

func (r GameEventRepo) Publish(_ context.Context, events []crime.GameEvent) error {
	r.store.events = append(r.store.events, events...)
	return nil
}

func (r GameEventRepo) ListRecent(_ context.Context, limit int) ([]crime.GameEvent, error) {
	out := make([]crime.GameEvent, 0, len(r.store.events))
	for i := len(r.store.events) - 1; i >= 0; i-- {
		out = append(out, r.store.events[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

package ports

import (
	"context"
	"time"

	"undercity/internal/domain/crime"
)

// CrimeHistoryRecord is one append-only audit row. The idempotency key
// lets a retried request replay its stored outcome instead of rolling
// the dice twice.
type CrimeHistoryRecord struct {
	CharacterID    string
	IdempotencyKey string
	Outcome        crime.ResolutionOutcome
	AppliedAt      time.Time
}

type CharacterRepository interface {
	GetByID(ctx context.Context, characterID string) (crime.CharacterState, error)
	// SaveWithVersion performs a conditional write: it succeeds only if
	// the stored row still carries expectedVersion, otherwise it
	// returns ErrConflict. expectedVersion 0 creates the row.
	SaveWithVersion(ctx context.Context, state crime.CharacterState, expectedVersion int64) error
	// RegenerateEnergy tops up every non-full character by amount,
	// capped at max energy, and reports how many rows changed.
	RegenerateEnergy(ctx context.Context, amount int) (int64, error)
}

type CrimeHistoryRepository interface {
	GetByIdempotencyKey(ctx context.Context, characterID, key string) (*CrimeHistoryRecord, error)
	Append(ctx context.Context, record CrimeHistoryRecord) error
	ListByCharacterID(ctx context.Context, characterID string, limit int) ([]CrimeHistoryRecord, error)
}

type GameEventRepository interface {
	Publish(ctx context.Context, events []crime.GameEvent) error
	ListRecent(ctx context.Context, limit int) ([]crime.GameEvent, error)
}

package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"undercity/internal/app/ports"
	"undercity/internal/domain/crime"
)

type stubHistoryRepo struct {
	records   []ports.CrimeHistoryRecord
	lastLimit int
}

func (r *stubHistoryRepo) GetByIdempotencyKey(context.Context, string, string) (*ports.CrimeHistoryRecord, error) {
	return nil, ports.ErrNotFound
}

func (r *stubHistoryRepo) Append(_ context.Context, record ports.CrimeHistoryRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *stubHistoryRepo) ListByCharacterID(_ context.Context, characterID string, limit int) ([]ports.CrimeHistoryRecord, error) {
	r.lastLimit = limit
	out := []ports.CrimeHistoryRecord{}
	for _, record := range r.records {
		if record.CharacterID == characterID {
			out = append(out, record)
		}
	}
	return out, nil
}

func TestExecute_ListsCharacterEntries(t *testing.T) {
	now := time.Unix(1700000000, 0)
	repo := &stubHistoryRepo{records: []ports.CrimeHistoryRecord{
		{CharacterID: "char-1", IdempotencyKey: "k-1", Outcome: crime.ResolutionOutcome{CrimeID: "pickpocket", Success: true, Reward: 120}, AppliedAt: now},
		{CharacterID: "char-2", IdempotencyKey: "k-2", Outcome: crime.ResolutionOutcome{CrimeID: "mugging"}, AppliedAt: now},
	}}
	uc := UseCase{History: repo}

	out, err := uc.Execute(context.Background(), Request{CharacterID: "char-1"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if len(out.Entries) != 1 {
		t.Fatalf("entries=%d want 1", len(out.Entries))
	}
	if out.Entries[0].Outcome.CrimeID != "pickpocket" || out.Entries[0].Outcome.Reward != 120 {
		t.Fatalf("unexpected entry: %+v", out.Entries[0])
	}
	if repo.lastLimit != defaultLimit {
		t.Fatalf("limit=%d want default %d", repo.lastLimit, defaultLimit)
	}
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := UseCase{History: &stubHistoryRepo{}}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

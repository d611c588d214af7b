package regen

import (
	"context"
	"testing"

	"undercity/internal/adapter/repo/memory"
	"undercity/internal/domain/crime"
)

func TestRun_TopsUpWithoutOvershoot(t *testing.T) {
	store := memory.NewStore()
	store.SeedCharacter(crime.CharacterState{CharacterID: "char-1", Energy: 10, MaxEnergy: 100, Version: 1})
	store.SeedCharacter(crime.CharacterState{CharacterID: "char-2", Energy: 98, MaxEnergy: 100, Version: 1})
	store.SeedCharacter(crime.CharacterState{CharacterID: "char-3", Energy: 100, MaxEnergy: 100, Version: 1})
	repo := memory.NewCharacterRepo(store)

	ticker, err := New("@every 1h", 5, repo)
	if err != nil {
		t.Fatalf("new ticker: %v", err)
	}
	ticker.run()

	ctx := context.Background()
	low, _ := repo.GetByID(ctx, "char-1")
	if low.Energy != 15 || low.Version != 2 {
		t.Fatalf("char-1 energy/version=%d/%d want 15/2", low.Energy, low.Version)
	}
	nearFull, _ := repo.GetByID(ctx, "char-2")
	if nearFull.Energy != 100 {
		t.Fatalf("char-2 energy=%d want capped 100", nearFull.Energy)
	}
	full, _ := repo.GetByID(ctx, "char-3")
	if full.Version != 1 {
		t.Fatalf("full character must be untouched, version=%d", full.Version)
	}
}

func TestNew_RejectsBadSpec(t *testing.T) {
	if _, err := New("not a cron spec", 5, memory.NewCharacterRepo(memory.NewStore())); err == nil {
		t.Fatalf("expected error for invalid cron spec")
	}
}

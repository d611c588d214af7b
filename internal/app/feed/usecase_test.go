package feed

import (
	"context"
	"testing"
	"time"

	"undercity/internal/adapter/repo/memory"
	"undercity/internal/domain/crime"
)

func TestExecute_NewestFirstWithLimit(t *testing.T) {
	store := memory.NewStore()
	events := memory.NewGameEventRepo(store)
	now := time.Unix(1700000000, 0)
	_ = events.Publish(context.Background(), []crime.GameEvent{
		{ID: "e-1", Type: crime.EventCrimeSuccess, ActorID: "char-1", OccurredAt: now},
		{ID: "e-2", Type: crime.EventCrimeJailed, ActorID: "char-2", OccurredAt: now.Add(time.Minute)},
		{ID: "e-3", Type: crime.EventCrimeSuccess, ActorID: "char-1", OccurredAt: now.Add(2 * time.Minute)},
	})

	uc := UseCase{Events: events}
	out, err := uc.Execute(context.Background(), Request{Limit: 2})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if len(out.Events) != 2 {
		t.Fatalf("events=%d want 2", len(out.Events))
	}
	if out.Events[0].ID != "e-3" || out.Events[1].ID != "e-2" {
		t.Fatalf("expected newest first, got %+v", out.Events)
	}
}

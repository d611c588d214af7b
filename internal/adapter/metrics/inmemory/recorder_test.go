package inmemory

import (
	"sync"
	"testing"
)

func TestRecorder_Snapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordResolved(true)
	r.RecordResolved(true)
	r.RecordResolved(false)
	r.RecordConflict()
	r.RecordFailure()

	snap := r.Snapshot()
	if snap.ResolveSuccess != 2 || snap.ResolveJailed != 1 {
		t.Fatalf("success/jailed=%d/%d want 2/1", snap.ResolveSuccess, snap.ResolveJailed)
	}
	if snap.ResolveConflict != 1 || snap.ResolveFailure != 1 {
		t.Fatalf("conflict/failure=%d/%d want 1/1", snap.ResolveConflict, snap.ResolveFailure)
	}
	if snap.ResolveTotal != 5 {
		t.Fatalf("total=%d want 5", snap.ResolveTotal)
	}
}

func TestRecorder_ConcurrentRecords(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.RecordResolved(i%2 == 0)
		}(i)
	}
	wg.Wait()

	if snap := r.Snapshot(); snap.ResolveTotal != 50 {
		t.Fatalf("total=%d want 50", snap.ResolveTotal)
	}
}

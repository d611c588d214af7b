package inmemory

import "sync"

type Snapshot struct {
	ResolveTotal    uint64 `json:"resolve_total"`
	ResolveSuccess  uint64 `json:"resolve_success"`
	ResolveJailed   uint64 `json:"resolve_jailed"`
	ResolveConflict uint64 `json:"resolve_conflict"`
	ResolveFailure  uint64 `json:"resolve_failure"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	jailed   uint64
	conflict uint64
	failure  uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordResolved(success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if success {
		r.success++
		return
	}
	r.jailed++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		ResolveTotal:    r.success + r.jailed + r.conflict + r.failure,
		ResolveSuccess:  r.success,
		ResolveJailed:   r.jailed,
		ResolveConflict: r.conflict,
		ResolveFailure:  r.failure,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

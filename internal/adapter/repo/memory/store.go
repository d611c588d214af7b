package memory

import (
	"sync"

	"undercity/internal/app/ports"
	"undercity/internal/domain/crime"
)

// Store backs the in-memory adapters. The TxManager serializes access
// through mu, mirroring the all-or-nothing write the gorm adapters get
// from a database transaction.
type Store struct {
	mu         sync.Mutex
	characters map[string]crime.CharacterState
	history    map[string]ports.CrimeHistoryRecord
	byChar     map[string][]ports.CrimeHistoryRecord
	events     []crime.GameEvent
}

func NewStore() *Store {
	return &Store{
		characters: make(map[string]crime.CharacterState),
		history:    make(map[string]ports.CrimeHistoryRecord),
		byChar:     make(map[string][]ports.CrimeHistoryRecord),
	}
}

func historyKey(characterID, key string) string {
	return characterID + "::" + key
}

func (s *Store) SeedCharacter(state crime.CharacterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.characters[state.CharacterID] = state
}

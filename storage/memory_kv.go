package storage

import (
	"encoding/json"
)

// MemoryKV is an in-process KV used in tests and as the fallback when no
// data directory is configured. Values round-trip through the same JSON
// envelope as the file-backed adapter so the observable shape matches.
type MemoryKV struct {
	slots map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: map[string][]byte{}}
}

var _ KV = (*MemoryKV)(nil)

func (s *MemoryKV) Get(slot string, out interface{}) bool {
	b, ok := s.slots[slot]
	if !ok {
		return false
	}

	var env struct {
		State   json.RawMessage `json:"state"`
		Version int             `json:"version"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return false
	}
	if len(env.State) == 0 {
		return false
	}
	return json.Unmarshal(env.State, out) == nil
}

func (s *MemoryKV) Set(slot string, v interface{}) error {
	b, err := json.Marshal(envelope{State: v, Version: envelopeVersion})
	if err != nil {
		return err
	}
	s.slots[slot] = b
	return nil
}

func (s *MemoryKV) Delete(slot string) error {
	delete(s.slots, slot)
	return nil
}

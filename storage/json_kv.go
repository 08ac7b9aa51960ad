package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	Logger "github.com/orbitsocial/orbit-core/utils/log"
)

// JSONFileKV keeps one pretty-printed JSON file per slot under a data
// directory. Reads fail open: a missing, unreadable or corrupt file behaves
// like an empty slot.
type JSONFileKV struct {
	mu  sync.Mutex
	dir string
}

func NewJSONFileKV(dir string) (*JSONFileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "fail to create storage dir")
	}
	return &JSONFileKV{dir: dir}, nil
}

var _ KV = (*JSONFileKV)(nil)

func (s *JSONFileKV) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func (s *JSONFileKV) Get(slot string, out interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(slot))
	if err != nil {
		if !os.IsNotExist(err) {
			Logger.LogV2.Errorf("fail to read slot ", slot, err)
		}
		return false
	}

	var env struct {
		State   json.RawMessage `json:"state"`
		Version int             `json:"version"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		Logger.LogV2.Errorf("corrupt slot ", slot, err)
		return false
	}
	if len(env.State) == 0 {
		return false
	}
	if err := json.Unmarshal(env.State, out); err != nil {
		Logger.LogV2.Errorf("corrupt slot state ", slot, err)
		return false
	}
	return true
}

func (s *JSONFileKV) Set(slot string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(envelope{State: v, Version: envelopeVersion}, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "fail to marshal slot %s", slot)
	}
	if err := os.WriteFile(s.path(slot), b, 0o644); err != nil {
		return errors.Wrapf(err, "fail to write slot %s", slot)
	}
	return nil
}

func (s *JSONFileKV) Delete(slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(slot)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "fail to delete slot %s", slot)
	}
	return nil
}

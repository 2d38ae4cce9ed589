package finance

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// StorageName is the fixed key the whole serialized state lives under. It is
// kept for compatibility with backups produced by the original web app, which
// persisted under the same name in browser storage.
const StorageName = "finance-storage"

// Storage is the durable key-value collaborator behind the store. Load
// reports found=false when nothing was persisted yet, which is not an error.
type Storage interface {
	Load() (state *State, found bool, err error)
	Save(*State) error
}

// FileStorage persists the state as a single JSON document on disk.
type FileStorage struct {
	Path string
}

// NewFileStorage stores the state under dir as "finance-storage.json".
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{Path: filepath.Join(dir, StorageName+".json")}
}

func (f *FileStorage) Load() (*State, bool, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read state file %q: %w", f.Path, err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, false, fmt.Errorf("could not decode state file %q: %w", f.Path, err)
	}
	return &s, true, nil
}

func (f *FileStorage) Save(s *State) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", f.Path, err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode state: %w", err)
	}
	// Write to a sibling file first so a crash mid-write cannot truncate the
	// previous state.
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("could not write state file %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("could not replace state file %q: %w", f.Path, err)
	}
	return nil
}

// MemoryStorage keeps the state in memory. Used in tests and as a null
// storage when persistence is not wanted.
type MemoryStorage struct {
	mu    sync.Mutex
	state *State
	saves int
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (m *MemoryStorage) Load() (*State, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, false, nil
	}
	return m.state.Clone(), true, nil
}

func (m *MemoryStorage) Save(s *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s.Clone()
	m.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (m *MemoryStorage) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

var _ Storage = (*FileStorage)(nil)
var _ Storage = (*MemoryStorage)(nil)

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ktausif7709-art/Time-tracker/internal/model"
)

// Fixed document keys. Each holds one whole-document JSON blob.
const (
	EntriesKey  = "chronotrack_entries_v1"
	ProjectsKey = "chronotrack_projects_v1"
	TimerKey    = "chronotrack_timer_v1"
)

// KV is a string-keyed whole-document store. Get reports ok=false when the
// key has never been written.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Close() error
}

// BaseDir returns the root data directory (~/.chronotrack).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".chronotrack"), nil
}

// Open creates the KV backend named by the config. An empty path selects
// the default location under BaseDir.
func Open(backend, path string) (*Store, error) {
	switch backend {
	case "", "file":
		if path == "" {
			base, err := BaseDir()
			if err != nil {
				return nil, err
			}
			path = base
		}
		kv, err := NewFileKV(path)
		if err != nil {
			return nil, err
		}
		return New(kv), nil
	case "sqlite":
		if path == "" {
			base, err := BaseDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(base, "chronotrack.db")
		}
		kv, err := NewSQLiteKV(path)
		if err != nil {
			return nil, err
		}
		return New(kv), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want \"file\" or \"sqlite\")", backend)
	}
}

// Store reads and writes the application documents over a KV backend.
// Missing or unparseable documents degrade to a default collection; a
// corrupted store must never crash the application.
type Store struct {
	kv KV
}

// New wraps a KV backend in a document store.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// LoadEntries returns the persisted entry collection, or an empty one if the
// document is absent, unreadable, or corrupt.
func (s *Store) LoadEntries() []model.TimeEntry {
	data, ok := s.read(EntriesKey)
	if !ok {
		return []model.TimeEntry{}
	}
	var entries []model.TimeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: corrupt entries document, starting fresh: %v\n", err)
		return []model.TimeEntry{}
	}
	if entries == nil {
		entries = []model.TimeEntry{}
	}
	return entries
}

// SaveEntries writes the whole entry collection.
func (s *Store) SaveEntries(entries []model.TimeEntry) error {
	return s.write(EntriesKey, entries)
}

// LoadProjects returns the persisted project collection. If no document has
// ever been saved (or it is corrupt) the fixed seed set is returned instead;
// the seed lives in memory only and is not written back here.
func (s *Store) LoadProjects() []model.Project {
	data, ok := s.read(ProjectsKey)
	if !ok {
		return model.DefaultProjects()
	}
	var projects []model.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: corrupt projects document, using defaults: %v\n", err)
		return model.DefaultProjects()
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return projects
}

// SaveProjects writes the whole project collection. An empty collection is
// never persisted: a save firing before project data has loaded would
// otherwise clobber previously saved projects.
func (s *Store) SaveProjects(projects []model.Project) error {
	if len(projects) == 0 {
		return nil
	}
	return s.write(ProjectsKey, projects)
}

// LoadTimer returns the persisted stopwatch state, zero if absent or corrupt.
func (s *Store) LoadTimer() model.TimerState {
	data, ok := s.read(TimerKey)
	if !ok {
		return model.TimerState{}
	}
	var st model.TimerState
	if err := json.Unmarshal(data, &st); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: corrupt timer document, resetting: %v\n", err)
		return model.TimerState{}
	}
	return st
}

// SaveTimer writes the stopwatch state.
func (s *Store) SaveTimer(st model.TimerState) error {
	return s.write(TimerKey, st)
}

// read fetches a raw document, treating backend read errors like absence so
// that a broken store degrades instead of failing the command.
func (s *Store) read(key string) ([]byte, bool) {
	data, ok, err := s.kv.Get(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", key, err)
		return nil, false
	}
	return data, ok
}

func (s *Store) write(key string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling %s: %w", key, err)
	}
	if err := s.kv.Put(key, data); err != nil {
		return fmt.Errorf("storage error writing %s: %w", key, err)
	}
	return nil
}

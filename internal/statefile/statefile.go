// Package statefile persists whole-file JSON state records. Every mutating
// call rewrites the full file via a temp-file-then-rename so a crash
// mid-write never leaves a partial record behind. Single writer assumed.
package statefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// #region status

// Status distinguishes the three load outcomes so callers can degrade
// observably instead of treating every failure as "empty".
type Status int

const (
	Found Status = iota
	NotFound
	Corrupt
)

// String returns the status name for diagnostics.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case Corrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// #endregion status

// #region store-interface

// Store is the state-store boundary injected into each component. Dir backs
// it with files for production; Mem backs it in memory for tests.
type Store interface {
	Load(name string, v any) (Status, error)
	Save(name string, v any) error
}

// #endregion store-interface

// #region dir

// Dir is the file-backed store rooted at a project directory.
type Dir struct {
	path string
}

// NewDir creates a store rooted at path.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the full path of a named state file.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.path, name)
}

// Load reads and unmarshals a named state file into v.
// A missing file reports NotFound; unreadable or unparseable content
// reports Corrupt. v is untouched unless the status is Found.
func (d *Dir) Load(name string, v any) (Status, error) {
	data, err := os.ReadFile(d.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return NotFound, nil
		}
		return Corrupt, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return Corrupt, fmt.Errorf("parse %s: %w", name, err)
	}
	return Found, nil
}

// Save atomically rewrites a named state file with v as indented JSON.
func (d *Dir) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", d.path, err)
	}

	tmp, err := os.CreateTemp(d.path, name+".tmp")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, d.Path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// #endregion dir

// #region mem

// Mem is the in-memory store adapter used by tests.
type Mem struct {
	files map[string][]byte
}

// NewMem creates an empty in-memory store.
func NewMem() *Mem {
	return &Mem{files: make(map[string][]byte)}
}

// Load unmarshals a named record into v.
func (m *Mem) Load(name string, v any) (Status, error) {
	data, ok := m.files[name]
	if !ok {
		return NotFound, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return Corrupt, fmt.Errorf("parse %s: %w", name, err)
	}
	return Found, nil
}

// Save stores v as a named record.
func (m *Mem) Save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	m.files[name] = data
	return nil
}

// SetRaw stores raw bytes, bypassing marshaling. Tests use it to plant
// corrupt content.
func (m *Mem) SetRaw(name string, data []byte) {
	m.files[name] = data
}

// #endregion mem

package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yaml "github.com/goccy/go-yaml"

	"github.com/calpuzzle/calpuzzle/internal/puzzle"
	"github.com/calpuzzle/calpuzzle/internal/solver"
)

// ErrStoreIO wraps any filesystem or payload-decoding failure.
var ErrStoreIO = errors.New("catalog: store i/o failure")

// Store is a directory of one YAML payload per configuration, named by the
// configuration's MMDDWW-Mon-DD-Wdy basename.
type Store struct {
	dir string
}

// NewStore opens (but does not create) a catalogue backed by dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the catalogue's backing directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) payloadPath(cfg puzzle.Configuration) string {
	return filepath.Join(s.dir, cfg.String()+".yaml")
}

func (s *Store) lockPath(cfg puzzle.Configuration) string {
	return filepath.Join(s.dir, cfg.String()+".lock")
}

// Exists reports whether cfg already has a catalogue record.
func (s *Store) Exists(cfg puzzle.Configuration) bool {
	_, err := os.Stat(s.payloadPath(cfg))
	return err == nil
}

// Write atomically persists placements as cfg's catalogue record: the payload
// is written to a sibling .tmp file, fsynced, then renamed into place, so a
// reader never observes a partially-written file.
func (s *Store) Write(cfg puzzle.Configuration, placements []solver.Placement) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating catalog directory: %v", ErrStoreIO, err)
	}

	payload, err := yaml.MarshalWithOptions(newRecord(cfg, placements), yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("%w: encoding record: %v", ErrStoreIO, err)
	}

	finalPath := s.payloadPath(cfg)
	tmpFile, err := os.CreateTemp(s.dir, cfg.String()+"-*.yaml.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrStoreIO, err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmpFile.Write(payload); err != nil {
		tmpFile.Close()
		return fmt.Errorf("%w: writing temp file: %v", ErrStoreIO, err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("%w: fsyncing temp file: %v", ErrStoreIO, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("%w: closing temp file: %v", ErrStoreIO, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("%w: renaming into place: %v", ErrStoreIO, err)
	}
	return nil
}

// Read returns cfg's stored placements, transparently accepting the legacy
// bare-array payload shape (the decoded document is a sequence rather than a
// mapping). Only the placements are returned; the configuration is the cfg
// the caller passed, not anything read from the payload.
func (s *Store) Read(cfg puzzle.Configuration) ([]solver.Placement, error) {
	data, err := os.ReadFile(s.payloadPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("%w: reading record: %v", ErrStoreIO, err)
	}

	var probe interface{}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: decoding record: %v", ErrStoreIO, err)
	}

	var parts []RecordPart
	switch probe.(type) {
	case []interface{}:
		// Legacy shape: the payload is just the parts list, with no
		// configuration wrapper. The triple is recovered from cfg (the
		// caller already knows it from the filename), not from the payload.
		if err := yaml.Unmarshal(data, &parts); err != nil {
			return nil, fmt.Errorf("%w: decoding legacy record: %v", ErrStoreIO, err)
		}
	default:
		var record Record
		if err := yaml.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("%w: decoding record: %v", ErrStoreIO, err)
		}
		parts = record.Parts
	}

	return partsToPlacements(parts)
}

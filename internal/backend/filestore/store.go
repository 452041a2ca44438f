// Package filestore implements service.Store on top of a single JSON or YAML document.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"todo/internal/service"
)

// Format is the on-disk encoding of the task document.
type Format int

const (
	// FormatJSON writes a JSON array indented with four spaces.
	FormatJSON Format = iota
	// FormatYAML writes a YAML sequence.
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFor picks the document format from the file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// record is the persisted shape of one task.
type record struct {
	Title string `json:"title" yaml:"title"`
	Done  bool   `json:"done" yaml:"done"`
}

// Store implements service.Store for one document on the local filesystem.
type Store struct {
	path   string
	format Format
	schema *jsonschema.Schema
	logger *zap.Logger
}

// New creates a Store for the document at path.
// The document does not need to exist yet.
func New(path string, logger *zap.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("task file path is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	return &Store{
		path:   path,
		format: FormatFor(path),
		schema: schema,
		logger: logger.With(zap.String("path", path)),
	}, nil
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Load implements service.Store.
func (s *Store) Load(ctx context.Context) ([]service.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("task file not found, starting empty")
		return []service.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Debug("task file is empty")
		return []service.Task{}, nil
	}

	records, err := s.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", service.ErrCorruptData, s.path, err)
	}

	tasks := make([]service.Task, len(records))
	for i, r := range records {
		tasks[i] = service.Task{Title: r.Title, Done: r.Done}
	}
	s.logger.Debug("task file loaded", zap.Int("count", len(tasks)), zap.Stringer("format", s.format))
	return tasks, nil
}

// decode parses data, checks it against the document schema, and
// converts it to records.
func (s *Store) decode(data []byte) ([]record, error) {
	var doc interface{}
	switch s.format {
	case FormatYAML:
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		// Comments only: no document, same as a blank file.
		if raw == nil {
			return nil, nil
		}
		// Round-trip through JSON so the validator only sees JSON value types.
		converted, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(converted, &doc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}

	if err := validateDocument(s.schema, doc); err != nil {
		return nil, err
	}

	var records []record
	switch s.format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Save implements service.Store.
// The document is replaced atomically: a temp file in the same directory
// is written, synced, and renamed over the target. A symlinked document is
// written through to its target and an existing file keeps its mode.
func (s *Store) Save(ctx context.Context, tasks []service.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := make([]record, len(tasks))
	for i, t := range tasks {
		records[i] = record{Title: t.Title, Done: t.Done}
	}

	data, err := s.encode(records)
	if err != nil {
		return fmt.Errorf("encode task file: %w", err)
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	s.logger.Debug("task file saved", zap.Int("count", len(tasks)))
	return nil
}

func (s *Store) encode(records []record) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(records)
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// writeFileAtomic replaces path with data. perm applies only when the
// file does not exist yet.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	target, perm := resolveTarget(path, perm)

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	return os.Rename(tmpPath, target)
}

// resolveTarget follows symlinks at path and returns the file to replace
// along with the mode to give it.
func resolveTarget(path string, perm os.FileMode) (string, os.FileMode) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		// Missing file or dangling link: write at path itself.
		return path, perm
	}
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}
	return target, perm
}

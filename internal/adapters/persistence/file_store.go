package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrescamacho/spacerush-go/internal/domain/save"
)

// FileStore keeps the single save slot in one file
type FileStore struct {
	path  string
	codec *Codec
}

// NewFileStore creates a file store at path
func NewFileStore(path string, codec *Codec) *FileStore {
	return &FileStore{path: path, codec: codec}
}

// Path returns the save file location
func (s *FileStore) Path() string {
	return s.path
}

// Save replaces the save file. The document is written to a temporary file
// first so a crash mid-write leaves the previous save intact.
func (s *FileStore) Save(ctx context.Context, doc *save.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := s.codec.Encode(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

// Load reads the save file. A missing file is reported as save.ErrNoSave.
func (s *FileStore) Load(ctx context.Context) (*save.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, save.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	return s.codec.Decode(payload)
}

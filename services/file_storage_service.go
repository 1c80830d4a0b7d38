package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStorageService is the blob-storage collaborator: bytes in, opaque
// handle out. The booking engine never looks inside.
type FileStorageService struct {
	Dir string
}

func NewFileStorageService(dir string) *FileStorageService {
	if dir == "" {
		dir = "uploads"
	}
	return &FileStorageService{Dir: dir}
}

// Store writes data under a fresh handle and returns it.
func (s *FileStorageService) Store(data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}
	name := uuid.NewString() + ".jpg"
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return name, nil
}

// Retrieve reads the bytes back for a handle produced by Store.
func (s *FileStorageService) Retrieve(name string) ([]byte, error) {
	// handles are bare filenames; reject anything that walks out of Dir
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid blob handle %q", name)
	}
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

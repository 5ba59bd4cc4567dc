package storage

import (
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// FileStore copies caller-provided files into managed storage. Submissions
// reference the returned path, never the student's original one.
type FileStore interface {
	Store(sourcePath string) (string, error)
	Remove(path string) error
}

type localStore struct {
	fs  afero.Fs
	dir string
}

// NewLocalStore returns a FileStore rooted at dir on the given filesystem.
// Production wiring passes afero.NewOsFs(); tests pass a MemMapFs.
func NewLocalStore(fs afero.Fs, dir string) (FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.Storage(err)
	}
	return &localStore{fs: fs, dir: dir}, nil
}

// Store copies the file at sourcePath into the managed directory under a
// collision-resistant name, keeping the original extension.
func (s *localStore) Store(sourcePath string) (string, error) {
	src, err := s.fs.Open(sourcePath)
	if err != nil {
		return "", apperr.Storage(err)
	}
	defer src.Close()

	dest := filepath.Join(s.dir, uuid.NewString()+filepath.Ext(sourcePath))
	dst, err := s.fs.Create(dest)
	if err != nil {
		return "", apperr.Storage(err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		if rmErr := s.fs.Remove(dest); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", dest).Msg("Failed to clean up partial copy")
		}
		return "", apperr.Storage(err)
	}
	if err := dst.Close(); err != nil {
		return "", apperr.Storage(err)
	}
	return dest, nil
}

func (s *localStore) Remove(path string) error {
	if err := s.fs.Remove(path); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// Package file provides a file-backed blob store: one file per key under a
// base directory. Writes go through a temporary file and rename so a crashed
// write never leaves a half-written blob behind.
package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/domain/interfaces"
)

type File struct {
	dir string
}

var _ interfaces.BlobStore = &File{}

// New creates a file-backed blob store rooted at dir, creating it if needed.
func New(dir string) (*File, error) {
	if dir == "" {
		return nil, goerr.New("blob store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create blob store directory", goerr.V("dir", dir))
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	// Keys are collection keys under our control, but keep path traversal out
	// of the contract anyway.
	name := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(f.dir, name+".blob")
}

func (f *File) Get(ctx context.Context, key string) ([]byte, bool, error) {
	blob, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to read blob", goerr.V("key", key))
	}
	return blob, true, nil
}

func (f *File) Set(ctx context.Context, key string, blob []byte) error {
	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("key", key))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to write blob", goerr.V("key", key))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to close temp file", goerr.V("key", key))
	}

	if err := os.Rename(tmpName, f.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to replace blob", goerr.V("key", key))
	}
	return nil
}

func (f *File) Close() error {
	return nil
}

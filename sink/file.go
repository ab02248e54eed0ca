package sink

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/amirrezaask/setadt/errors"

	"github.com/google/uuid"
)

const defaultPerm fs.FileMode = 0o644

// File keeps the content in a single file which is truncated and rewritten
// on every Store.
type File struct {
	path string
	perm fs.FileMode
}

func NewFile(path string) *File {
	return &File{path: path, perm: defaultPerm}
}

func (f *File) Get(ctx context.Context) ([]byte, error) {
	bs, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot read %s", f.path)
	}
	return bs, nil
}

func (f *File) Store(ctx context.Context, data []byte) error {
	return errors.Wrap(os.WriteFile(f.path, data, f.perm), "cannot write %s", f.path)
}

func (f *File) String() string { return "file:" + f.path }

// AtomicFile writes to a temporary file next to path and renames it into
// place, so readers see either the old or the new content, never a torn one.
type AtomicFile struct {
	File
}

func NewAtomicFile(path string) *AtomicFile {
	return &AtomicFile{File{path: path, perm: defaultPerm}}
}

func (f *AtomicFile) Store(ctx context.Context, data []byte) (err error) {
	tmp := filepath.Join(filepath.Dir(f.path), "."+filepath.Base(f.path)+"."+uuid.NewString()+".tmp")
	fh, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, f.perm)
	if err != nil {
		return errors.Wrap(err, "cannot create temp file for %s", f.path)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = fh.Write(data); err != nil {
		fh.Close()
		return errors.Wrap(err, "cannot write temp file %s", tmp)
	}
	if err = fh.Sync(); err != nil {
		fh.Close()
		return errors.Wrap(err, "cannot sync temp file %s", tmp)
	}
	if err = fh.Close(); err != nil {
		return errors.Wrap(err, "cannot close temp file %s", tmp)
	}
	if err = os.Rename(tmp, f.path); err != nil {
		return errors.Wrap(err, "cannot move %s into place", tmp)
	}
	return nil
}

func (f *AtomicFile) String() string { return "atomic-file:" + f.path }

package fileutil

import (
	"io"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/thoreinstein/nsvalidate/internal/errors"
)

// NoLimit disables the size check of ReadFileWithLimit.
const NoLimit int64 = 0

// ErrFileTooLarge indicates that a file exceeded the requested size limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ErrIsDirectory indicates a path expected to be a file is a directory.
var ErrIsDirectory = errors.New("is a directory")

// ReadFileWithLimit reads a file of at most limit bytes. A limit of NoLimit
// (or any value <= 0) reads the whole file.
// A missing file yields an error matching fs.ErrNotExist.
func ReadFileWithLimit(afs afero.Fs, path string, limit int64) ([]byte, error) {
	f, err := afs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err == nil {
		if info.IsDir() {
			return nil, ErrIsDirectory
		}
		if limit > 0 && info.Size() > limit {
			return nil, tooLarge(limit)
		}
	}

	var r io.Reader = f
	if limit > 0 {
		r = io.LimitReader(f, limit+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if limit > 0 && int64(len(data)) > limit {
		return nil, tooLarge(limit)
	}

	return data, nil
}

func tooLarge(limit int64) error {
	return errors.Wrapf(ErrFileTooLarge, "limit %d bytes", limit)
}

// Exists reports whether path exists on afs, following symlinks where the
// filesystem supports them. Any stat error other than "not exist" is
// returned so callers can log it.
func Exists(afs afero.Fs, path string) (bool, error) {
	_, err := afs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

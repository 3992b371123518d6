package fs

import (
	"os"
	"path/filepath"

	"github.com/birkland/showid/metadata"
	"github.com/pkg/errors"
)

// ReadRecord reads the identifier record in the given item directory
func ReadRecord(dir string) (rec *metadata.Record, err error) {
	file, err := os.Open(filepath.Join(dir, metadata.RecordFile))
	if err != nil {
		return nil, errors.Wrapf(err, "could not open identifier record at %s", dir)
	}
	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "error closing file at %s", dir)
		}
	}()

	rec = &metadata.Record{}
	if err = metadata.Parse(file, rec); err != nil {
		return nil, errors.Wrapf(err, "could not parse identifier record at %s", dir)
	}

	return rec, nil
}

// Detect if the given directory holds an identifier record.
// Returns an error if the path cannot be accessed.
func isRecordDir(dir string) (bool, error) {
	info, err := os.Stat(filepath.Join(dir, metadata.RecordFile))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "could not access %s", dir)
	}

	return info.Mode().IsRegular(), nil
}

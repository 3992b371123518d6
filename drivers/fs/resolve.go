package fs

import (
	"fmt"
	"path/filepath"

	"github.com/birkland/showid"
	"github.com/birkland/showid/metadata"
	"github.com/pkg/errors"
)

// Record finds the identifier record of an item, and the directory it was
// found in.  A nil record with a nil error means the item has no record.
func (d *Driver) Record(item showid.Item) (*metadata.Record, string, error) {
	if !d.Available() {
		return nil, "", fmt.Errorf("no record root defined")
	}

	if d.cfg.ItemPath == nil {
		return d.search(item)
	}

	dir := filepath.Join(d.cfg.Root, filepath.FromSlash(d.cfg.ItemPath.Generate(item.ID.String())))

	isItem, err := isRecordDir(dir)
	if err != nil || !isItem {
		return nil, "", err
	}

	rec, err := ReadRecord(dir)
	if err != nil {
		return nil, "", err
	}

	if rec.Item != item.ID {
		return nil, "", fmt.Errorf("record at %s belongs to %s, not %s", dir, rec.Item, item)
	}

	return rec, dir, nil
}

// The hard way.  No path generator was given, so walk the whole tree
// until the item's record turns up.
func (d *Driver) search(item showid.Item) (*metadata.Record, string, error) {
	var found *metadata.Record
	var foundDir string

	err := d.Walk(func(dir string, rec *metadata.Record) error {
		if rec.Item != item.ID {
			return nil
		}
		found, foundDir = rec, dir
		return stop{}
	})
	if _, done := errors.Cause(err).(stop); err != nil && !done {
		return nil, "", errors.Wrapf(err, "error searching for record of %s", item)
	}

	return found, foundDir, nil
}

// stop halts a walk once its goal has been reached
type stop struct{}

func (stop) Error() string {
	return "walk stopped"
}

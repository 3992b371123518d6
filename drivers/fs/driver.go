// Package fs provides an identifier lookup backed by identifier records on a
// local filesystem.  Each item's record lives in its own directory below a
// root, in a file named metadata.RecordFile.
package fs

import (
	"fmt"
	"os"

	"github.com/birkland/showid"
	"github.com/birkland/showid/fspath"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Driver represents the filesystem driver for identifier records
type Driver struct {
	cfg Config
}

// Config encapsulates a filesystem driver config.
//
// If an ItemPath generator is provided, it will be used for quick lookups
// of item record directories.  If not provided, the driver will perform
// a brute force search through the directory tree when it needs to find
// the record of an item.
type Config struct {
	Root     string           // record root directory
	ItemPath fspath.Generator // record directories based on item id
	Log      *zerolog.Logger  // defaults to a no-op logger
}

// NewDriver initializes a new filesystem driver with the given root
// directory.  A driver without a root can be constructed, but is not
// Available and cannot look anything up.
func NewDriver(cfg Config) (*Driver, error) {
	if cfg.Root == "" {
		return &Driver{}, nil
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, errors.Wrapf(err, "could not find record root")
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", cfg.Root)
	}

	return &Driver{cfg: cfg}, nil
}

// Available tells whether the driver has a root to look up records in
func (d *Driver) Available() bool {
	return d != nil && d.cfg.Root != ""
}

// Lookup returns the first raw identifier of the given kind in the item's
// record.  It returns "" if the item has no record, or no such identifier.
func (d *Driver) Lookup(item showid.Item, kind showid.Kind) (string, error) {
	rec, _, err := d.Record(item)
	if err != nil || rec == nil {
		return "", err
	}

	return rec.Lookup(kind), nil
}

func (d *Driver) logger() *zerolog.Logger {
	if d.cfg.Log == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return d.cfg.Log
}

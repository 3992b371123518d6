package fs

import (
	"os"

	"github.com/birkland/showid/metadata"
	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

const (
	dontGoDeeper = true
	goDeeper     = false
)

// Walk iterates through every identifier record under the root, invoking f
// with each record and the directory holding it.  Directories below an item
// directory are not searched.  Records that cannot be parsed, or are invalid,
// are logged and skipped.  Any error returned by f terminates the walk.
func (d *Driver) Walk(f func(dir string, rec *metadata.Record) error) error {
	if !d.Available() {
		return errors.New("no record root defined")
	}

	err := fsWalk(d.cfg.Root, func(ospath string, e *godirwalk.Dirent) (bool, error) {

		// We don't care about regular files
		if !e.IsDir() && !e.IsSymlink() {
			return dontGoDeeper, nil
		}

		// Symlinks only matter if they lead to a directory
		if e.IsSymlink() {
			info, err := os.Stat(ospath)
			if err != nil || !info.IsDir() {
				return dontGoDeeper, nil
			}
		}

		isItem, err := isRecordDir(ospath)
		if err != nil {
			return dontGoDeeper, err
		}
		if !isItem {
			return goDeeper, nil
		}

		rec, err := ReadRecord(ospath)
		if err == nil {
			err = rec.Validate()
		}
		if err != nil {
			d.logger().Warn().Err(err).Str("dir", ospath).Msg("skipping identifier record")
			return dontGoDeeper, nil
		}

		return dontGoDeeper, f(ospath, rec)
	})
	if err != nil {
		return errors.Wrapf(err, "error performing walk")
	}
	return nil
}

type skip struct {
	action godirwalk.ErrorAction
}

func (skip) Error() string {
	return "node is skipped"
}

// Callback to be invoked each time a fs entry is encountered.
// Returns a Boolean indicating whether the current fs entry should be a
// considered a terminal (leaf) node.  If true, any children will not be
// walked.  Any error will terminate a walk entirely.
type fsCallback func(ospath string, e *godirwalk.Dirent) (terminal bool, err error)

func fsWalk(dir string, f fsCallback) error {

	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "error walking directory %s", dir)
	}

	return godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(ospath string, dirent *godirwalk.Dirent) error {
			terminal, err := f(ospath, dirent)
			if err != nil {
				return errors.Wrap(err, "terminating walk due to error")
			}
			if terminal {
				return skip{godirwalk.SkipNode}
			}
			return nil
		},
		ErrorCallback: func(ospath string, err error) godirwalk.ErrorAction {
			s, skip := errors.Cause(err).(skip)
			if skip {
				return s.action
			}

			return godirwalk.Halt
		},
		Unsorted:            true,
		FollowSymbolicLinks: true,
	},
	)
}

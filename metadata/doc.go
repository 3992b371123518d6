// Package metadata contains facilities for working with the identifier records
// kept for repository items.  A record is a 1:1 reflection of an
// identifiers.json file: the item it belongs to, and every persistent
// identifier assigned to that item so far, in the order they were assigned.
//
// Records are written by whatever mints identifiers; here they are only read,
// and re-serialized when listed.
package metadata

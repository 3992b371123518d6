package showid

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ConfigKey is the configuration property naming the identifier kinds to list
// in a submission.  Matching is a case-insensitive substring match, e.g.
// "doi, handle".
const ConfigKey = "webui.submission.list-identifiers"

// Kind names a kind of persistent identifier
type Kind int

// Identifier kinds
const (
	Unknown Kind = iota
	Handle
	DOI
)

// Kinds lists the displayable identifier kinds, in display order.
var Kinds = []Kind{DOI, Handle}

var kindNames = map[Kind]string{
	Unknown: "unknown",
	Handle:  "handle",
	DOI:     "doi",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unknown]
}

// ParseKind parses a kind name, ignoring case.  Unrecognized names parse
// as Unknown.
func ParseKind(name string) Kind {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	return Unknown
}

// Item is a repository item undergoing submission.  It is read-only as far as
// this package is concerned.
type Item struct {
	ID         uuid.UUID
	Collection string
}

// ParseItem parses an item UUID
func ParseItem(id string) (Item, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return Item{}, errors.Wrapf(err, "invalid item id %q", id)
	}
	return Item{ID: u}, nil
}

func (i Item) String() string {
	return i.ID.String()
}

// DisplayConfig determines which identifier kinds are shown.
type DisplayConfig struct {
	ShowDOI    bool
	ShowHandle bool
}

// Shows tells whether identifiers of the given kind are to be displayed.
func (c DisplayConfig) Shows(k Kind) bool {
	switch k {
	case DOI:
		return c.ShowDOI
	case Handle:
		return c.ShowHandle
	}
	return false
}

// IdentifierSet contains the display form of each identifier kind.  An empty
// value means the identifier was not requested, not found, or could not be
// resolved; consult the DisplayConfig to tell the first case apart.
type IdentifierSet struct {
	DOI    string
	Handle string
}

// Get returns the value for the given kind, or "" for an unknown kind
func (s IdentifierSet) Get(k Kind) string {
	switch k {
	case DOI:
		return s.DOI
	case Handle:
		return s.Handle
	}
	return ""
}

// Map returns the set keyed by kind name.  Both "doi" and "handle" are always
// present.
func (s IdentifierSet) Map() map[string]string {
	return map[string]string{
		DOI.String():    s.DOI,
		Handle.String(): s.Handle,
	}
}

// ConfigSource provides configuration properties by key.  The boolean result
// is false when the property is not defined at all.
type ConfigSource interface {
	Property(key string) (string, bool)
}

// IdentifierLookup finds the raw identifier of the given kind assigned to
// an item.  An empty string with a nil error means there is none.
type IdentifierLookup interface {
	Lookup(item Item, kind Kind) (string, error)
}

// Availability may be implemented by an IdentifierLookup that can be
// constructed but left unconfigured.  Unavailable lookups are never called.
type Availability interface {
	Available() bool
}

// IsAvailable tells whether an identifier lookup can be used at all
func IsAvailable(l IdentifierLookup) bool {
	if l == nil {
		return false
	}
	if a, ok := l.(Availability); ok {
		return a.Available()
	}
	return true
}

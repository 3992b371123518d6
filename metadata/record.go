package metadata

import (
	"encoding/json"
	"io"

	"github.com/birkland/showid"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RecordFile is the name of the file holding an item's identifier record
const RecordFile = "identifiers.json"

// Record lists the persistent identifiers assigned to an item
type Record struct {
	Item        uuid.UUID    `json:"item"`
	Identifiers []Identifier `json:"identifiers"`
}

// Identifier is a single raw persistent identifier, e.g. a handle 123456789/42
type Identifier struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Parse parses a byte stream into an identifier record
func Parse(r io.Reader, rec *Record) error {

	err := json.NewDecoder(r).Decode(rec)
	if err != nil {
		return errors.Wrap(err, "Could not decode json identifier record")
	}
	return nil
}

// Serialize writes the contents of the record to json
func (r *Record) Serialize(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}

// Lookup returns the first identifier of the given kind, or "" if the item
// has none.
func (r *Record) Lookup(kind showid.Kind) string {
	for _, id := range r.Identifiers {
		if showid.ParseKind(id.Type) == kind && id.Value != "" {
			return id.Value
		}
	}
	return ""
}

// Validate verifies that a record names its item and that each identifier
// has a known type and a value.  It does not check that identifier values are
// well formed; that is up to whoever displays them.
func (r *Record) Validate() error {
	if r.Item == uuid.Nil {
		return errors.New("identifier record does not name an item")
	}

	for i, id := range r.Identifiers {
		if showid.ParseKind(id.Type) == showid.Unknown {
			return errors.Errorf("identifier %d of %s has unknown type %q", i, r.Item, id.Type)
		}
		if id.Value == "" {
			return errors.Errorf("identifier %d of %s has no value", i, r.Item)
		}
	}
	return nil
}

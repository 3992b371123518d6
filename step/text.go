package step

import (
	"fmt"
	"io"

	"github.com/birkland/showid"
)

// Labels are the display labels of each identifier kind
var Labels = map[showid.Kind]string{
	showid.DOI:    "DOI",
	showid.Handle: "Handle",
}

// TextRenderer renders identifiers as plain text, one "label: value" line per
// enabled kind, under an optional heading and info line.
type TextRenderer struct {
	W       io.Writer
	Heading string
	Info    string
}

// RenderIdentifiers writes the enabled identifiers to the underlying writer
func (t TextRenderer) RenderIdentifiers(cfg showid.DisplayConfig, ids showid.IdentifierSet) error {
	for _, line := range []string{t.Heading, t.Info} {
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(t.W, line); err != nil {
			return err
		}
	}

	for _, kind := range showid.Kinds {
		if !cfg.Shows(kind) {
			continue
		}
		if _, err := fmt.Fprintf(t.W, "%s: %s\n", Labels[kind], ids.Get(kind)); err != nil {
			return err
		}
	}
	return nil
}

package step_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/birkland/showid"
	"github.com/birkland/showid/config"
	"github.com/birkland/showid/resolv"
	"github.com/birkland/showid/step"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testItem = showid.Item{ID: uuid.MustParse("8f3c1a2e-7b4d-4c1e-9a5f-2d6b8e0c4a11")}

// recorder is a Renderer remembering what it was asked to render
type recorder struct {
	calls int
	cfg   showid.DisplayConfig
	ids   showid.IdentifierSet
}

func (r *recorder) RenderIdentifiers(cfg showid.DisplayConfig, ids showid.IdentifierSet) error {
	r.calls++
	r.cfg, r.ids = cfg, ids
	return nil
}

// countingLookup serves a fixed handle, counting lookups
type countingLookup struct {
	handle string
	calls  int
}

func (c *countingLookup) Lookup(item showid.Item, kind showid.Kind) (string, error) {
	c.calls++
	if kind == showid.Handle {
		return c.handle, nil
	}
	return "", nil
}

func TestNoItem(t *testing.T) {
	lookup := &countingLookup{handle: "123456789/42"}
	s := &step.Step{Resolver: &resolv.Resolver{Lookup: lookup}}
	r := &recorder{}

	for name, render := range map[string]func(step.Submission, step.Renderer) error{
		"body":   s.Body,
		"review": s.Review,
	} {
		err := render(step.Submission{}, r)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, step.ErrNoItem), "%s: expected ErrNoItem, got %v", name, err)
	}

	assert.Zero(t, r.calls, "nothing should be rendered without an item")
	assert.Zero(t, lookup.calls, "nothing should be resolved without an item")
}

func TestBodyAndReviewResolveAgain(t *testing.T) {
	lookup := &countingLookup{handle: "123456789/42"}
	s := &step.Step{
		Config:   config.Map{showid.ConfigKey: "handle"},
		Resolver: &resolv.Resolver{Lookup: lookup},
	}
	sub := step.Submission{Item: &testItem}

	body := &recorder{}
	require.NoError(t, s.Body(sub, body))
	assert.Equal(t, showid.DisplayConfig{ShowHandle: true}, body.cfg)
	assert.Equal(t, showid.IdentifierSet{Handle: "http://hdl.handle.net/123456789/42"}, body.ids)

	lookup.handle = "123456789/43"

	review := &recorder{}
	require.NoError(t, s.Review(sub, review))
	assert.Equal(t, showid.IdentifierSet{Handle: "http://hdl.handle.net/123456789/43"}, review.ids)
	assert.Equal(t, 2, lookup.calls)
}

func TestNoResolver(t *testing.T) {
	s := &step.Step{}
	r := &recorder{}

	require.NoError(t, s.Review(step.Submission{Item: &testItem}, r))
	assert.Equal(t, showid.DisplayConfig{ShowDOI: true, ShowHandle: true}, r.cfg)
	assert.Equal(t, showid.IdentifierSet{}, r.ids)
}

type failingRenderer struct{}

func (failingRenderer) RenderIdentifiers(showid.DisplayConfig, showid.IdentifierSet) error {
	return errors.New("disk full")
}

func TestRenderErrorPropagates(t *testing.T) {
	s := &step.Step{}
	err := s.Body(step.Submission{Item: &testItem}, failingRenderer{})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, step.ErrNoItem))
}

func TestTextRenderer(t *testing.T) {
	cases := []struct {
		name     string
		heading  string
		info     string
		cfg      showid.DisplayConfig
		ids      showid.IdentifierSet
		expected string
	}{
		{
			name:     "both",
			heading:  "Identifiers",
			cfg:      showid.DisplayConfig{ShowDOI: true, ShowHandle: true},
			ids:      showid.IdentifierSet{DOI: "https://doi.org/10.5072/x", Handle: "http://hdl.handle.net/1/2"},
			expected: "Identifiers\nDOI: https://doi.org/10.5072/x\nHandle: http://hdl.handle.net/1/2\n",
		},
		{
			name:     "enabledButEmpty",
			cfg:      showid.DisplayConfig{ShowDOI: true, ShowHandle: true},
			ids:      showid.IdentifierSet{Handle: "http://hdl.handle.net/1/2"},
			expected: "DOI: \nHandle: http://hdl.handle.net/1/2\n",
		},
		{
			name:     "disabledHidden",
			cfg:      showid.DisplayConfig{ShowHandle: true},
			ids:      showid.IdentifierSet{DOI: "https://doi.org/10.5072/x", Handle: "http://hdl.handle.net/1/2"},
			expected: "Handle: http://hdl.handle.net/1/2\n",
		},
		{
			name:     "info",
			heading:  "Identifiers",
			info:     "Persistent identifiers assigned to this item:",
			cfg:      showid.DisplayConfig{ShowHandle: true},
			ids:      showid.IdentifierSet{Handle: "http://hdl.handle.net/1/2"},
			expected: "Identifiers\nPersistent identifiers assigned to this item:\nHandle: http://hdl.handle.net/1/2\n",
		},
		{
			name:     "infoWithoutHeading",
			info:     "No identifiers shown.",
			expected: "No identifiers shown.\n",
		},
		{
			name:     "nothing",
			heading:  "Identifiers",
			expected: "Identifiers\n",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := step.TextRenderer{W: &buf, Heading: c.heading, Info: c.info}.RenderIdentifiers(c.cfg, c.ids)
			require.NoError(t, err)
			assert.Equal(t, c.expected, buf.String())
		})
	}
}

// Package step implements the submission step showing an item's persistent
// identifiers, both as a step of its own and as a section of the final
// review.  Layout is left to a Renderer.
package step

import (
	"github.com/birkland/showid"
	"github.com/birkland/showid/resolv"
	"github.com/pkg/errors"
)

// ErrNoItem is returned when a step is rendered for a submission that has no
// item.  This is a programming error in the caller, and rendering is aborted.
var ErrNoItem = errors.New("identifier step called, but no item supplied")

// Submission is an in-progress submission, as far as this step cares
type Submission struct {
	Item *showid.Item
}

// Renderer renders resolved identifiers.  Each kind enabled in cfg is to be
// rendered even when its value is empty; what that looks like is up to the
// Renderer.
type Renderer interface {
	RenderIdentifiers(cfg showid.DisplayConfig, ids showid.IdentifierSet) error
}

// Step shows the identifiers of a submission item.  Configuration and
// identifiers are resolved anew each time the step is rendered.
type Step struct {
	Config   showid.ConfigSource
	Resolver *resolv.Resolver
}

// Body renders the step itself
func (s *Step) Body(sub Submission, r Renderer) error {
	return errors.Wrap(s.render(sub, r), "could not render identifier step")
}

// Review renders the step's section of the submission review
func (s *Step) Review(sub Submission, r Renderer) error {
	return errors.Wrap(s.render(sub, r), "could not render identifier review")
}

func (s *Step) render(sub Submission, r Renderer) error {
	if sub.Item == nil {
		return ErrNoItem
	}

	resolver := s.Resolver
	if resolver == nil {
		resolver = &resolv.Resolver{}
	}

	cfg, ids := resolver.Resolve(s.Config, *sub.Item)
	return r.RenderIdentifiers(cfg, ids)
}

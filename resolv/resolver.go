package resolv

import (
	"github.com/birkland/showid"
	"github.com/birkland/showid/canon"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Resolver looks up the identifiers of submission items and converts them to
// their display form.  A Resolver holds no mutable state; it is safe for
// concurrent use as long as its Lookup is.
type Resolver struct {
	Lookup  showid.IdentifierLookup // may be nil if there is no identifier service
	Handles canon.Converter         // defaults to canon.Handle{}
	DOIs    canon.Converter         // defaults to canon.DOI{}
	Log     *zerolog.Logger         // defaults to a no-op logger
}

// ResolveIdentifiers resolves the display form of every identifier kind
// enabled in cfg.  Kinds that are disabled, absent, or fail to resolve are
// left empty.  Failures are logged, never returned, and a failure for one
// kind does not affect any other.
func (r *Resolver) ResolveIdentifiers(cfg showid.DisplayConfig, item showid.Item) showid.IdentifierSet {
	var ids showid.IdentifierSet

	if !showid.IsAvailable(r.Lookup) {
		r.logger().Debug().Stringer("item", item).Msg("no identifier service available, nothing to resolve")
		return ids
	}

	if cfg.ShowHandle {
		ids.Handle = r.display(item, showid.Handle)
	}
	if cfg.ShowDOI {
		ids.DOI = r.display(item, showid.DOI)
	}

	return ids
}

// Resolve reads the display configuration from src and resolves the
// identifiers of item accordingly.
func (r *Resolver) Resolve(src showid.ConfigSource, item showid.Item) (showid.DisplayConfig, showid.IdentifierSet) {
	cfg := DisplayConfigFrom(src)
	return cfg, r.ResolveIdentifiers(cfg, item)
}

// display resolves a single kind, swallowing any failure
func (r *Resolver) display(item showid.Item, kind showid.Kind) string {
	value, err := r.resolve(item, kind)
	if err != nil {
		r.logger().Warn().Err(err).
			Stringer("item", item).
			Stringer("kind", kind).
			Msg("could not resolve identifier")
		return ""
	}
	return value
}

func (r *Resolver) resolve(item showid.Item, kind showid.Kind) (string, error) {
	raw, err := r.Lookup.Lookup(item, kind)
	if err != nil {
		return "", errors.Wrapf(err, "lookup of %s failed", kind)
	}
	if raw == "" {
		return "", nil
	}

	value, err := r.converter(kind).Convert(raw)
	if err != nil {
		return "", errors.Wrapf(err, "could not convert %s %q", kind, raw)
	}
	return value, nil
}

func (r *Resolver) converter(kind showid.Kind) canon.Converter {
	switch kind {
	case showid.Handle:
		if r.Handles != nil {
			return r.Handles
		}
		return canon.Handle{}
	case showid.DOI:
		if r.DOIs != nil {
			return r.DOIs
		}
		return canon.DOI{}
	}

	return canon.ConverterFunc(func(raw string) (string, error) {
		return "", errors.Errorf("no converter for %s identifiers", kind)
	})
}

func (r *Resolver) logger() *zerolog.Logger {
	if r.Log == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return r.Log
}

package resolv

import (
	"strings"

	"github.com/birkland/showid"
)

// ResolveDisplayConfig determines the identifier kinds to display from the raw
// value of showid.ConfigKey.  When the value is undefined or empty, all kinds
// are shown.  Otherwise a kind is shown if its name occurs anywhere in the
// value, ignoring case.
func ResolveDisplayConfig(raw string, defined bool) showid.DisplayConfig {
	if !defined || raw == "" {
		return showid.DisplayConfig{ShowDOI: true, ShowHandle: true}
	}

	raw = strings.ToLower(raw)
	return showid.DisplayConfig{
		ShowDOI:    strings.Contains(raw, showid.DOI.String()),
		ShowHandle: strings.Contains(raw, showid.Handle.String()),
	}
}

// DisplayConfigFrom reads showid.ConfigKey from the given source and resolves
// it.  A nil source counts as unconfigured.
func DisplayConfigFrom(src showid.ConfigSource) showid.DisplayConfig {
	if src == nil {
		return ResolveDisplayConfig("", false)
	}
	return ResolveDisplayConfig(src.Property(showid.ConfigKey))
}

package canon

import (
	"fmt"
	"strings"
)

// DefaultDOIResolver is the doi.org proxy
const DefaultDOIResolver = "https://doi.org"

// DOIResolverKey is the configuration property overriding the DOI resolver
const DOIResolverKey = "identifier.doi.resolver"

const doiScheme = "doi:"

// Resolver URL prefixes that may already be present on a raw DOI
var doiProxies = []string{
	"https://doi.org/",
	"http://doi.org/",
	"https://dx.doi.org/",
	"http://dx.doi.org/",
}

// DOI produces the external form of DOIs, i.e. a URL resolving the DOI.
type DOI struct {
	Resolver string // defaults to DefaultDOIResolver
}

// Convert returns the external (resolvable URL) form of a DOI.  Input may be
// a bare 10.x/y DOI, a doi: URI, or a doi.org URL.
func (d DOI) Convert(raw string) (string, error) {
	doi, err := bareDOI(raw)
	if err != nil {
		return "", err
	}

	resolver := strings.TrimRight(d.Resolver, "/")
	if resolver == "" {
		resolver = DefaultDOIResolver
	}

	return resolver + "/" + doi, nil
}

func bareDOI(raw string) (string, error) {
	doi := strings.TrimSpace(raw)

	if hasPrefixFold(doi, doiScheme) {
		doi = doi[len(doiScheme):]
	} else {
		for _, proxy := range doiProxies {
			if hasPrefixFold(doi, proxy) {
				doi = doi[len(proxy):]
				break
			}
		}
	}

	// A DOI is a 10.<registrant>/<suffix>
	slash := strings.Index(doi, "/")
	if !strings.HasPrefix(doi, "10.") || slash <= len("10.") || slash == len(doi)-1 {
		return "", fmt.Errorf("%q is not a DOI", raw)
	}

	return doi, nil
}

package canon

import (
	"fmt"
	"strings"
)

// DefaultHandlePrefix is the canonical prefix of the global handle resolver
const DefaultHandlePrefix = "http://hdl.handle.net/"

// HandlePrefixKey is the configuration property overriding the canonical
// handle prefix
const HandlePrefixKey = "handle.canonical.prefix"

const handleScheme = "hdl:"

// Handle produces the canonical form of handles, i.e. the handle appended to a
// resolver prefix.
type Handle struct {
	Prefix string // defaults to DefaultHandlePrefix
}

// Convert returns the canonical form of a handle.  Input may be a bare
// prefix/suffix handle, an hdl: URI, or a URL under some handle resolver.
func (h Handle) Convert(raw string) (string, error) {
	prefix := h.Prefix
	if prefix == "" {
		prefix = DefaultHandlePrefix
	}

	handle, err := bareHandle(raw, prefix, DefaultHandlePrefix)
	if err != nil {
		return "", err
	}

	return prefix + handle, nil
}

// bareHandle strips any scheme or resolver from a handle.  Known canonical
// prefixes are tried before falling back to dropping a URL's host.
func bareHandle(raw string, prefixes ...string) (string, error) {
	handle := strings.TrimSpace(raw)

	for _, prefix := range prefixes {
		if hasPrefixFold(handle, prefix) {
			return checkHandle(raw, handle[len(prefix):])
		}
	}

	switch {
	case hasPrefixFold(handle, handleScheme):
		handle = handle[len(handleScheme):]
	case hasPrefixFold(handle, "http://"), hasPrefixFold(handle, "https://"):
		// Resolver URL, e.g. http://hdl.handle.net/123456789/42.  The handle
		// is everything past the host.
		rest := handle[strings.Index(handle, "://")+3:]
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return "", fmt.Errorf("no handle in %q", raw)
		}
		handle = rest[slash+1:]
	}

	return checkHandle(raw, handle)
}

// A handle is <prefix>/<suffix>
func checkHandle(raw, handle string) (string, error) {
	slash := strings.Index(handle, "/")
	if slash <= 0 || slash == len(handle)-1 {
		return "", fmt.Errorf("%q is not a handle", raw)
	}

	return handle, nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

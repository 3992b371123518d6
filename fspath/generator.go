package fspath

import "strings"

// Generator generates a relative, solidus delimited file path
// from a given identifier.  The resulting paths map item identifiers
// to the directories holding their identifier records, possibly with
// intervening directories, e.g. pairtrees.
type Generator interface {
	Generate(string) string
}

// GeneratorFunc is a function that can be used to satisfy the Generator interface
type GeneratorFunc func(string) string

// Generate a path from a given id string
func (g GeneratorFunc) Generate(id string) string {
	return g(id)
}

// Passthrough generates paths that are identical to the id, except with any
// leading solidus removed.
var Passthrough = GeneratorFunc(func(id string) string {
	return strings.TrimLeft(id, "/")
})

// Pairtree splits the id into two-character directories, followed by a
// directory named after the full id, e.g. 8f3c1a2e-... becomes
// 8f/3c/1a/8f3c1a2e-...  Only the first three pairs are used, and hyphens are
// ignored when pairing.
var Pairtree = GeneratorFunc(func(id string) string {
	id = strings.TrimLeft(id, "/")
	compact := strings.ReplaceAll(id, "-", "")

	var b strings.Builder
	for i := 0; i+2 <= len(compact) && i < 6; i += 2 {
		b.WriteString(compact[i : i+2])
		b.WriteByte('/')
	}
	b.WriteString(id)
	return b.String()
})

// Package canon converts raw persistent identifiers into the form in which
// they are shown to people: canonical handle URLs and resolvable DOI URLs.
package canon

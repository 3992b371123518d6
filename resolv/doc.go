// Package resolv decides which persistent identifiers of a submission item are
// shown, and resolves each to its display form.  Resolution is request scoped:
// nothing is cached between calls, so every rendering of a step sees the
// identifiers as they are at that moment.
package resolv

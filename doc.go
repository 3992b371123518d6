// Package showid defines an API for displaying the persistent identifiers
// (DOIs, Handles) of an item during submission to a repository.
//
// Identifiers are never minted here.  They are looked up through an
// IdentifierLookup implementation, converted to their display form, and
// handed to whatever renders the submission step.  See individual driver
// documentation under drivers/ for lookup implementations.
package showid

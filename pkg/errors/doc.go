// Package errors provides coded errors for gencisco.
//
// Every failure the generator can hit is fatal, so callers rarely branch on
// the error itself; the code exists so tests and the CLI can tell the
// failure kinds apart without matching on message text.
package errors

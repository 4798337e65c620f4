// Package celestial holds the records written to simulator config files.
//
// A [Body] is a point mass with a position and a velocity. A [Document] is the
// whole config: a time multiplier passed through to the simulator and the
// ordered list of bodies. Documents are assembled through a [Builder], which
// validates every body as it is added.
//
// # Errors
//
// Every validation failure across orbitgen wraps [ErrInvalidInput], so callers
// can test for the single "invalid input" kind with errors.Is:
//
//	if errors.Is(err, celestial.ErrInvalidInput) {
//	    // ask again
//	}
package celestial

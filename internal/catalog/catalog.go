// Package catalog provides the read-only indexed view over a linked NEO
// data set: exact-match lookup of bodies by designation or name, and
// lazy predicate-filtered iteration over close approaches.
package catalog

import "github.com/papapumpkin/perihelion/internal/neo"

// Catalog indexes a NEO data set for exact lookup and querying. All
// state is built once in New and treated as immutable afterwards; reads
// need no locking.
type Catalog struct {
	byDesignation map[string]*neo.Body
	byName        map[string]*neo.Body
	approaches    []*neo.Approach
}

// New links the supplied bodies and approaches and indexes the result.
// The collections must not have been linked already: New performs the
// single linking pass itself (see neo.Link for the single-use
// precondition). Duplicate designations are a caller precondition;
// last write wins if violated. The two indices are built from the body
// collection as supplied and never re-derived from the approaches.
func New(bodies []*neo.Body, approaches []*neo.Approach) *Catalog {
	neo.Link(bodies, approaches)

	c := &Catalog{
		byDesignation: make(map[string]*neo.Body, len(bodies)),
		byName:        make(map[string]*neo.Body),
		approaches:    approaches,
	}
	for _, b := range bodies {
		c.byDesignation[b.Designation] = b
		// Unnamed bodies contribute no name entry, so the empty string
		// can never resolve to a body.
		if b.Name != "" {
			c.byName[b.Name] = b
		}
	}
	return c
}

// ByDesignation returns the body with exactly the given designation.
// No normalization or case folding is applied.
func (c *Catalog) ByDesignation(designation string) (*neo.Body, bool) {
	b, ok := c.byDesignation[designation]
	return b, ok
}

// ByName returns the body with exactly the given name. The empty
// string never matches, even if some body's name is stored empty.
func (c *Catalog) ByName(name string) (*neo.Body, bool) {
	b, ok := c.byName[name]
	return b, ok
}

// NumBodies returns the number of indexed bodies.
func (c *Catalog) NumBodies() int {
	return len(c.byDesignation)
}

// NumApproaches returns the number of stored approaches, resolved or
// not.
func (c *Catalog) NumApproaches() int {
	return len(c.approaches)
}

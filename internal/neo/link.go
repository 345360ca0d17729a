package neo

// Link resolves every approach's designation against the supplied
// bodies, establishing the bidirectional association: on a hit the
// approach's Body is set and the approach is appended to that body's
// Approaches in input order; on a miss the approach's Body stays nil
// and the approach belongs to no body's collection, though it remains
// in the caller's overall slice.
//
// The designation index is built once, so the pass is O(1) per
// approach. Linking is single-use: running it again over an
// already-linked set double-appends into body collections. That
// precondition is the caller's to uphold and is not re-checked here.
func Link(bodies []*Body, approaches []*Approach) {
	index := make(map[string]*Body, len(bodies))
	for _, b := range bodies {
		index[b.Designation] = b
	}
	for _, a := range approaches {
		b, ok := index[a.Designation]
		if !ok {
			continue
		}
		a.Body = b
		b.Approaches = append(b.Approaches, a)
	}
}

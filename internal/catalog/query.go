package catalog

import "github.com/papapumpkin/perihelion/internal/neo"

// Predicate is a pure boolean test over a single approach (and,
// transitively, its linked body). Defined here (where consumed) per
// project convention; constructors live in the filters package.
type Predicate func(*neo.Approach) bool

// Query returns a fresh cursor over the stored approaches in internal
// storage order, yielding only approaches that satisfy every predicate.
// An empty predicate list yields everything. Each call returns an
// independent cursor, so repeating a query replays the same results.
//
// No ordering is promised beyond stable replay of storage order; sort
// downstream if chronology matters.
func (c *Catalog) Query(preds ...Predicate) *Results {
	return &Results{approaches: c.approaches, preds: preds}
}

// Results is a lazy, single-pass cursor over matching approaches,
// shaped like bufio.Scanner: call Next until it returns false, reading
// the current element with Approach. Candidates are evaluated only as
// the consumer advances; nothing is materialized up front.
//
// A Results is not restartable — once exhausted it stays exhausted —
// and must be driven by at most one consumer.
type Results struct {
	approaches []*neo.Approach
	preds      []Predicate
	cur        *neo.Approach
	next       int
}

// Next advances to the next approach satisfying all predicates.
// Predicates are evaluated in supplied order and short-circuit on the
// first false. It returns false once the underlying collection is
// exhausted.
func (r *Results) Next() bool {
	for r.next < len(r.approaches) {
		a := r.approaches[r.next]
		r.next++
		if r.matches(a) {
			r.cur = a
			return true
		}
	}
	r.cur = nil
	return false
}

// Approach returns the element the last successful Next advanced to,
// or nil before the first Next and after exhaustion.
func (r *Results) Approach() *neo.Approach {
	return r.cur
}

// Collect drains the cursor and returns up to limit matches; limit <= 0
// means no cap. Like any other consumption, this exhausts the cursor.
func (r *Results) Collect(limit int) []*neo.Approach {
	var out []*neo.Approach
	for r.Next() {
		out = append(out, r.Approach())
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (r *Results) matches(a *neo.Approach) bool {
	for _, p := range r.preds {
		if !p(a) {
			return false
		}
	}
	return true
}

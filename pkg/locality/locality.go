// Package locality models the distributed runtime's notion of a compute
// node: a Locale is a logical shard identified by an integer index, and a
// Distribution maps vertex/edge ids onto the locale that owns them. A
// Registry provides the privatization primitive described in the design
// notes -- a concurrent map from a shared id to one handle per locale, so
// that "privatized" objects can be modeled as plain Go interfaces without a
// language-level privatization feature.
package locality

import "fmt"

// Locale identifies a logical shard. In this single-process engine a
// Locale is an array index rather than a network peer, but the contract --
// every object is owned by exactly one locale, and cross-locale access is
// an explicit call -- is preserved.
type Locale int

// String satisfies fmt.Stringer for use in log fields and metric labels.
func (l Locale) String() string {
	return fmt.Sprintf("locale-%d", int(l))
}

// All returns the full locale set 0..n-1.
func All(n int) []Locale {
	ls := make([]Locale, n)
	for i := range ls {
		ls[i] = Locale(i)
	}
	return ls
}

// Distribution maps vertex and edge ids to their owning locale and back to
// a local offset within that locale's slice of the domain.
type Distribution interface {
	NumLocales() int
	OwnerOfVertex(v uint64) Locale
	OwnerOfEdge(e uint64) Locale
	VertexRange(l Locale) (start, count uint64)
	EdgeRange(l Locale) (start, count uint64)
}

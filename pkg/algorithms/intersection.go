// Package algorithms implements the analytic queries that run on top of
// the hypergraph store: sorted-array set utilities, breadth-first search
// and s-walk community discovery driven by pkg/workqueue and
// pkg/termination, and triangle counting on the 2-uniform vertex
// projection.
package algorithms

import "cmp"

// Intersection returns the sorted ascending elements common to both a and
// b. Both inputs must already be sorted ascending; this is a precondition
// the function does not verify, matching the source's unguarded resize of
// the result domain off both inputs' assumed order.
func Intersection[T cmp.Ordered](a, b []T) []T {
	out := make([]T, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// IntersectionSize counts the elements common to both a and b without
// allocating the intersection itself.
func IntersectionSize[T cmp.Ordered](a, b []T) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}

// IntersectionSizeAtLeast reports whether the intersection of a and b has
// at least s elements, short-circuiting once the threshold is reached
// instead of counting the full intersection.
func IntersectionSizeAtLeast[T cmp.Ordered](a, b []T, s int) bool {
	if s <= 0 {
		return true
	}
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			if n >= s {
				return true
			}
			i++
			j++
		}
	}
	return false
}

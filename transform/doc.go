// Package transform rewrites the string values reachable from a pointer in
// place. It is meant for fluentvalidation.Normalizer implementations, which
// run after decoding and before validation:
//
//	func (o *Order) Normalize() {
//	    transform.TrimSpace(o)
//	}
package transform

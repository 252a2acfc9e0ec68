// Package bsearch is a toolkit of key-lookup variants over sorted slices.
//
// Every variant answers the same question -- does an element equal to key
// exist, and at which index -- but probes the range differently, trading
// comparison count, branch predictability and locality:
//
//   - `linear.go`: linear & breaking linear scan
//   - `binary.go`: standard, boundless, doubletapped, monobound and
//     tripletapped binary search
//   - `quaternary.go`: monobound quaternary search for very large ranges
//   - `interpolated.go`: monobound interpolated search for uniform data
//   - `adaptive.go`: adaptive binary search anchored to the previous hit
//
// All searches are read-only and allocation-free. The slice must already be
// sorted ascending under the supplied (or natural) order; passing an
// unsorted slice or inconsistent predicates is a caller bug, not a
// detectable error. Every variant returns NotFound when no element equals
// the key, and returns it for an empty slice without touching any element.
package bsearch

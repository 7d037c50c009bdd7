// Package dimension models the value space a combinatorial test suite
// varies over.
//
// A Dimension is a named, ordered, duplicate-free list of values with a
// default. A Space is an ordered collection of dimensions with
// unique names; it enumerates the Cartesian product of all dimensions
// lazily. A Combination is one complete assignment of a value to every
// dimension in a space, with a stable derived identifier and an O(dimensions)
// single-difference check against another combination.
//
// Dimensions and spaces are constructed once and are immutable afterward.
package dimension

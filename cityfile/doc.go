// SPDX-License-Identifier: MIT

// Package cityfile reads and writes city road networks in the plain-text
// NODES/ARCS format:
//
//	NODES
//	<count>
//	<cityName> <x> <y>
//	...
//	ARCS
//	<cityA> <cityB> <cost>
//	...
//
// Fields are separated by runs of whitespace and blank lines are ignored.
// Every road is undirected; Read stores it as two directed records through
// citygraph.Builder, Write emits it once.
//
// Errors returned by Read are *ParseError values carrying the 1-based line
// number; the wrapped cause is one of ErrMissingHeader, ErrMalformedLine,
// ErrCountMismatch, a citygraph sentinel (ErrCityNotFound, ErrDuplicateCity,
// ErrNegativeCost, ErrCostTooLarge) or a strconv error. Use errors.Is / errors.As to inspect.
package cityfile

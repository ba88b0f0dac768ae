// Package domain contains the probability value types the rest of the
// library is built on.
//
// This package defines:
//   - Value and Domain: labeled outcomes and the ordered finite sets they
//     belong to
//   - Distribution: a normalized probability law over one domain
//   - ConditionalTable: per-parent-combination distributions over a child
//     domain
//   - Evidence: observed node values supplied to a query
//   - PosteriorSet: the per-node distributions a query produces
//
// # Design Philosophy
//
// Every type validates at construction and is immutable afterwards, so a
// value that exists is a value that holds its invariants. Distributions
// normalize their weights on construction and conditional tables reject
// incomplete or conflicting rows, which lets inference code consume them
// without re-checking.
//
// # Canonical Order
//
// A Domain fixes the order of its values at construction. Tables,
// enumeration, and reports all follow that order, so identical inputs
// produce identical outputs.
package domain

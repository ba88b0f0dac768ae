// Package network assembles nodes into a directed acyclic graph and
// prepares it for querying.
//
// A network goes through two phases. While mutable, nodes are added with
// AddNode; parent references are plain names, so declaration order does
// not matter. Bake then resolves every reference, checks parent domains
// against each child's table, rejects cycles, and freezes the network
// with a fixed topological evaluation order. After Bake the network is
// immutable and safe for concurrent readers.
package network

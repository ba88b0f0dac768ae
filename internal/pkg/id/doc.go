// Package id provides identifier generation for log correlation.
//
// This package generates:
//   - Query IDs (qry_ plus 16 hex characters), one per posterior query
//   - Run IDs (run_ plus a short UUID), one per command invocation
//   - UUID v4 identifiers
//
// # Performance
//
// ID generation uses sync.Pool to minimize allocations in hot paths.
// All functions are safe for concurrent use.
//
// # Validation
//
// The package includes validators for its ID formats:
//
//	if !id.ValidateQueryID(queryID) {
//	    return errors.New("invalid query ID")
//	}
package id

// Package errors provides application error types for beliefnet.
//
// This package defines:
//   - AppError type with error classification
//   - Error constructors for every failure mode of the model layer
//   - Error type checking helpers
//
// # Error Codes
//
//   - VALIDATION_ERROR: malformed domain, distribution, or table weights
//   - DUPLICATE_NAME: node name already registered in a network
//   - CYCLE: network edges form a directed cycle
//   - UNKNOWN_NODE: a parent or evidence reference does not resolve
//   - INVALID_VALUE: evidence value outside the node's domain
//   - NETWORK_FROZEN: structural mutation after bake
//   - UNBAKED_NETWORK: query before bake
//   - ZERO_EVIDENCE_PROBABILITY: evidence impossible under the model
//   - STATE_SPACE_TOO_LARGE: joint state space exceeds the configured limit
//
// # Usage
//
// Create errors using constructor functions:
//
//	return apperrors.DuplicateName(node.Name())
//	return apperrors.Validation("weights must not be negative")
//
// Check error types:
//
//	if apperrors.IsCycle(err) {
//	    // Handle cyclic structure
//	}
//
// # Error Wrapping
//
// Errors support wrapping with fmt.Errorf:
//
//	return fmt.Errorf("bake failed: %w", apperrors.Cycle(names))
//
// Every error is raised synchronously at the violated precondition. There is
// no retry or recovery logic anywhere in this module: each failure reflects a
// programming or input error, never an environmental one.
package errors

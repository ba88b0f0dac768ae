package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateName      = "DUPLICATE_NAME"
	CodeCycle              = "CYCLE"
	CodeUnknownNode        = "UNKNOWN_NODE"
	CodeInvalidValue       = "INVALID_VALUE"
	CodeNetworkFrozen      = "NETWORK_FROZEN"
	CodeUnbakedNetwork     = "UNBAKED_NETWORK"
	CodeZeroEvidence       = "ZERO_EVIDENCE_PROBABILITY"
	CodeStateSpaceTooLarge = "STATE_SPACE_TOO_LARGE"
)

// AppError represents an application error with context
type AppError struct {
	Code    string
	Message string
	Details map[string]string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithError wraps an underlying error
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Validation creates a validation error
func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Validationf creates a validation error with a formatted message
func Validationf(format string, args ...any) *AppError {
	return New(CodeValidation, fmt.Sprintf(format, args...))
}

// DuplicateName creates a duplicate name error
func DuplicateName(name string) *AppError {
	return New(CodeDuplicateName, fmt.Sprintf("node %q is already registered", name)).
		WithDetail("node", name)
}

// Cycle creates a cycle error for the named nodes
func Cycle(nodes []string) *AppError {
	if len(nodes) == 0 {
		return New(CodeCycle, "network contains a directed cycle")
	}
	return New(CodeCycle, fmt.Sprintf("network contains a directed cycle through %s", strings.Join(nodes, ", "))).
		WithDetail("nodes", strings.Join(nodes, ","))
}

// UnknownNode creates an unknown node error
func UnknownNode(name string) *AppError {
	return New(CodeUnknownNode, fmt.Sprintf("node %q does not exist in the network", name)).
		WithDetail("node", name)
}

// InvalidValue creates an invalid value error for evidence outside a node's domain
func InvalidValue(node, value string) *AppError {
	return New(CodeInvalidValue, fmt.Sprintf("value %q is outside the domain of node %q", value, node)).
		WithDetail("node", node).
		WithDetail("value", value)
}

// NetworkFrozen creates a frozen network error
func NetworkFrozen() *AppError {
	return New(CodeNetworkFrozen, "network is baked and can no longer be modified")
}

// UnbakedNetwork creates an unbaked network error
func UnbakedNetwork() *AppError {
	return New(CodeUnbakedNetwork, "network must be baked before it can be queried")
}

// ZeroEvidenceProbability creates an impossible evidence error
func ZeroEvidenceProbability() *AppError {
	return New(CodeZeroEvidence, "evidence has zero probability under the model")
}

// StateSpaceTooLarge creates a state space limit error
func StateSpaceTooLarge(size, limit uint64) *AppError {
	return New(CodeStateSpaceTooLarge, fmt.Sprintf("joint state space of %d states exceeds the limit of %d", size, limit)).
		WithDetail("size", fmt.Sprintf("%d", size)).
		WithDetail("limit", fmt.Sprintf("%d", limit))
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As attempts to convert an error to a specific type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error if present
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// hasCode reports whether the error carries the given code
func hasCode(err error, code string) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == code
	}
	return false
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsDuplicateName checks if the error is a duplicate name error
func IsDuplicateName(err error) bool {
	return hasCode(err, CodeDuplicateName)
}

// IsCycle checks if the error is a cycle error
func IsCycle(err error) bool {
	return hasCode(err, CodeCycle)
}

// IsUnknownNode checks if the error is an unknown node error
func IsUnknownNode(err error) bool {
	return hasCode(err, CodeUnknownNode)
}

// IsInvalidValue checks if the error is an invalid value error
func IsInvalidValue(err error) bool {
	return hasCode(err, CodeInvalidValue)
}

// IsNetworkFrozen checks if the error is a frozen network error
func IsNetworkFrozen(err error) bool {
	return hasCode(err, CodeNetworkFrozen)
}

// IsUnbakedNetwork checks if the error is an unbaked network error
func IsUnbakedNetwork(err error) bool {
	return hasCode(err, CodeUnbakedNetwork)
}

// IsZeroEvidenceProbability checks if the error is an impossible evidence error
func IsZeroEvidenceProbability(err error) bool {
	return hasCode(err, CodeZeroEvidence)
}

// IsStateSpaceTooLarge checks if the error is a state space limit error
func IsStateSpaceTooLarge(err error) bool {
	return hasCode(err, CodeStateSpaceTooLarge)
}

// Package service contains the orchestration layer above the inference
// engine.
//
// Services coordinate between callers and the engine, tagging each query
// with a correlation ID and logging outcome and duration with structured
// fields. Callers hand in a baked network and evidence; everything else
// (validation, limits, enumeration) happens in the packages below.
//
// # Thread Safety
//
// All services are designed to be safe for concurrent use from
// multiple goroutines.
package service

// Package inference answers posterior queries against baked networks.
//
// The engine performs exact inference by walking the joint state space
// in topological order, multiplying each node's prior or conditional
// factor along the way. Evidence pins its node to the observed value, so
// observed branches are never expanded, and branches whose partial
// product reaches zero are pruned. The accumulated weights are
// normalized by the total evidence probability, which yields every
// node's posterior in a single pass.
//
// Enumeration is exponential in the number of nodes, so the engine
// refuses queries whose joint state space exceeds its configured limit.
package inference

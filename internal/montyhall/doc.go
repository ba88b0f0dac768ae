// Package montyhall builds the classic three-door network: a uniform
// guest pick, a uniform prize placement, and the host's reveal rule
// conditioned on both. It is the library's reference model and the
// network the command-line tool queries.
package montyhall

// Package larder holds build metadata for the larder module.
package larder

// Version is the semantic version of the larder CLI and libraries.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/larder"

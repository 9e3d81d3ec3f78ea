// Package types defines the configuration, run result and Store types
// shared by the aoc runner, along with the standard errors they return.
package types

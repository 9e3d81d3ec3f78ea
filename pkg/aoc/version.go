// Package aoc holds the release version of the aoc2023 runner.
package aoc

// Version is the semantic version printed by "aoc version".
const Version = "0.3.0"

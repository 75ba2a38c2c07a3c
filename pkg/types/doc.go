// Package types defines the Record and Settings entities, patch types,
// sort keys, and standard errors shared by the E-library store, the
// validators, and the CLI.
package types

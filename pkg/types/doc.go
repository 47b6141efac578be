// Package types defines the vocabulary record, run configuration, and the
// standard errors shared by the vocabdedup engine and CLI.
package types

// Package memdirectory is an in-memory member and section directory.
//
// It serves tests and single-node deployments that seed the directory from a JSON file.
package memdirectory

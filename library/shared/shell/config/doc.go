// Package config reads the configuration of the lending engine from the environment
// and builds the event store, logger and policies from it.
package config

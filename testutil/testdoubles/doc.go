// Package testdoubles provides spies for the logging, metrics and tracing interfaces of the lending engine.
//
// Every spy records calls only if it was created with recordCalls set to true.
package testdoubles

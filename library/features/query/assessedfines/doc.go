// Package assessedfines implements the listing of overdue fines, for one member or for everyone.
package assessedfines

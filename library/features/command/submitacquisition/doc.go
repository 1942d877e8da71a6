// Package submitacquisition implements the submission of a purchase request.
// Every accepted request starts Pending.
package submitacquisition

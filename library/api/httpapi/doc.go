// Package httpapi exposes the lending engine as a JSON HTTP API on gin.
//
// Rejected commands answer with their error kind:
//
//	NotFound                          404
//	Forbidden                         403
//	Conflict, Duplicate, InvalidState 409
//	Unavailable                       409
//	OutOfRange                        422
//	malformed request                 400
//
// The X-Request-ID header becomes the correlation id of all events a request appends.
package httpapi

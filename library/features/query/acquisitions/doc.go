// Package acquisitions implements the listing of purchase requests, optionally narrowed to one status.
package acquisitions

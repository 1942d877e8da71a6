// Package acquisitiondetails implements the lookup of one purchase request.
package acquisitiondetails

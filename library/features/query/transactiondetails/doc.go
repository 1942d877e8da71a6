// Package transactiondetails implements the lookup of one loan together with the fine assessed on its return.
package transactiondetails

// Package loansbymember implements the listing of the copies a member currently holds.
package loansbymember

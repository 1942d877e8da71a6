package core

import (
	"math"
	"time"
)

// FeeTypeLibraryFine is the fee type of every fine the engine assesses.
const FeeTypeLibraryFine = "Library Fine"

// FeeStatusUnpaid is the status of a freshly assessed fine.
const FeeStatusUnpaid = "Unpaid"

const day = 24 * time.Hour

// LoanPolicy holds the configurable numbers of the lending rules. Amounts are in currency units.
type LoanPolicy struct {
	FinePerDayUnits               int
	StudentLoanDays               int
	TeacherLoanDays               int
	ReservationFollowupWindowDays int
	FeeDueDays                    int
}

// DefaultLoanPolicy returns the policy the school library runs with.
func DefaultLoanPolicy() LoanPolicy {
	return LoanPolicy{
		FinePerDayUnits:               5,
		StudentLoanDays:               14,
		TeacherLoanDays:               28,
		ReservationFollowupWindowDays: 14,
		FeeDueDays:                    14,
	}
}

// LoanDays is the loan period for a member role. Teachers borrow longer, everybody else gets the student period.
func (p LoanPolicy) LoanDays(role MemberRole) int {
	if role == RoleTeacher {
		return p.TeacherLoanDays
	}

	return p.StudentLoanDays
}

// DueDate is issueDate plus the loan period of role.
func (p LoanPolicy) DueDate(issueDate time.Time, role MemberRole) time.Time {
	return issueDate.AddDate(0, 0, p.LoanDays(role))
}

// FineFor returns the fine for the given number of overdue days.
func (p LoanPolicy) FineFor(overdueDays int) int {
	if overdueDays <= 0 {
		return 0
	}

	return overdueDays * p.FinePerDayUnits
}

// FeeDueDate is the date a fine assessed on returnDate has to be paid.
func (p LoanPolicy) FeeDueDate(returnDate time.Time) time.Time {
	return returnDate.AddDate(0, 0, p.FeeDueDays)
}

// FollowUpDue reports whether a reservation requested at requestDate waited longer than the follow-up window.
func (p LoanPolicy) FollowUpDue(requestDate time.Time, asOf time.Time) bool {
	return asOf.Sub(requestDate) > time.Duration(p.ReservationFollowupWindowDays)*day
}

// ComputeOverdueDays compares both dates at midnight UTC.
// It returns 0 if asOf is not after dueDate, otherwise the number of started days in between.
func ComputeOverdueDays(dueDate time.Time, asOf time.Time) int {
	due := midnight(dueDate)
	at := midnight(asOf)

	if !at.After(due) {
		return 0
	}

	return int(math.Ceil(at.Sub(due).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// IsBeforeDay reports whether t lies on an earlier calendar day (UTC) than reference.
func IsBeforeDay(t time.Time, reference time.Time) bool {
	return midnight(t).Before(midnight(reference))
}

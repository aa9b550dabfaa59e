package domain

import (
	"errors"
	"time"
)

// ContractStatus is the lifecycle state of a contract.
type ContractStatus string

const (
	StatusActive  ContractStatus = "Active"
	StatusRenewed ContractStatus = "Renewed"
)

var ErrContractNotFound = errors.New("contract not found")

// Contract is a one-year renewable bundle of services tied to one address.
//
// Services holds snapshot copies taken at creation time, not catalog
// references: later catalog price edits must never alter the totals of
// contracts already signed. AddressAlias and UserEmail are denormalised for
// the same reason.
type Contract struct {
	ID           string         `json:"id"`
	UserID       string         `json:"-"`
	UserEmail    string         `json:"user_email"`
	Status       ContractStatus `json:"status"`
	Services     []Service      `json:"services"`
	AddressID    string         `json:"address_id"`
	AddressAlias string         `json:"address_alias"`
	TotalPrice   int64          `json:"total_price"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
}

// AddCalendarYear advances t by exactly one calendar year, clamping the day
// to the target month's length so Feb 29 lands on Feb 28 rather than
// normalising into March.
func AddCalendarYear(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	if last := daysInMonth(year+1, month); day > last {
		day = last
	}
	return time.Date(year+1, month, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month; day 0 of the
// following month is its last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package entity

import (
	"time"

	"punchbot/internal/domain"
)

// User is a person known to the punch clock, keyed by their Slack identity.
// Users are soft-deactivated, never deleted, so historical punches always
// resolve.
type User struct {
	ID            int64
	SlackUserID   string
	SlackUserName string
	DisplayName   string
	Department    string
	Role          string
	StandardHours int
	Timezone      string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin reports whether the user may act on other users' records.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// Location resolves the user's IANA timezone, falling back to UTC when the
// stored name is empty or unknown.
func (u *User) Location() *time.Location {
	if u.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// PunchEvent is an immutable attendance fact. Timestamps are stored in UTC;
// the local calendar day is only derived at query time.
type PunchEvent struct {
	ID        int64
	UserID    int64
	Action    domain.PunchAction
	Timestamp time.Time
	IsAuto    bool
	Anomalous bool
	Note      string
	CreatedAt time.Time
}

// LeaveRecord is an inclusive calendar-date range of absence. Dates use
// domain.DateLayout in the user's timezone.
type LeaveRecord struct {
	ID        int64
	UserID    int64
	StartDate string
	EndDate   string
	LeaveType string
	Reason    string
	Status    domain.LeaveStatus
	CreatedAt time.Time
}

// Covers reports whether date falls inside the leave range. Dates in
// domain.DateLayout compare correctly as strings.
func (l *LeaveRecord) Covers(date string) bool {
	return l.StartDate <= date && date <= l.EndDate
}

// ReminderMark records that a given reminder kind was already delivered to
// a user on a given local date, so restarts never double-send.
type ReminderMark struct {
	ID        int64
	UserID    int64
	Kind      string
	Date      string
	CreatedAt time.Time
}

// DaySession is the folded work/break accounting for one user on one local
// calendar day. It is always recomputed from the event log, never stored.
type DaySession struct {
	UserID        int64
	Date          string
	WorkedMinutes int
	BreakMinutes  int
	FirstIn       *time.Time
	LastOut       *time.Time
	Status        domain.SessionStatus
	// Incomplete marks a past day that was left open and whose worked
	// minutes are capped at end of day as an estimate.
	Incomplete bool
	Anomalies  int
	OnLeave    bool
}

// RangeSummary aggregates day sessions over an inclusive date range.
type RangeSummary struct {
	UserID             int64
	StartDate          string
	EndDate            string
	TotalWorkedMinutes int
	TotalBreakMinutes  int
	WorkedDays         int
	LeaveDays          int
	Anomalies          int
	Days               []*DaySession
}

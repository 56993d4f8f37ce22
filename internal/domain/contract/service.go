package contract

import (
	"context"
	"time"

	"punchbot/internal/domain"
	"punchbot/internal/domain/entity"
)

// AttendanceService is the accounting engine surface consumed by the Slack
// handlers and the background scheduler.
type AttendanceService interface {
	GetOrCreateUser(ctx context.Context, slackUserID, slackUserName string) (*entity.User, error)

	// RecordPunch appends an immutable punch event. A zero `at` means now.
	// Future timestamps fail with domain.ErrInvalidTimestamp; out-of-sequence
	// punches are stored with Anomalous set unless strict sequencing is on.
	RecordPunch(ctx context.Context, userID int64, action domain.PunchAction, at time.Time, isAuto bool, note string) (*entity.PunchEvent, error)

	// ComputeDaySession folds the user's punches for one local calendar
	// date into worked/break totals. Pure over the stored events.
	ComputeDaySession(ctx context.Context, userID int64, date string) (*entity.DaySession, error)

	// AggregateRange sums day sessions over an inclusive date range,
	// counting approved-leave days separately from worked days.
	AggregateRange(ctx context.Context, userID int64, startDate, endDate string) (*entity.RangeSummary, error)

	RequestLeave(ctx context.Context, userID int64, startDate, endDate, leaveType, reason string) (*entity.LeaveRecord, error)
	// CancelLeave cancels the not-yet-started leave covering date.
	CancelLeave(ctx context.Context, userID int64, date string) (*entity.LeaveRecord, error)
	ListLeaves(ctx context.Context, userID int64, limit int) ([]*entity.LeaveRecord, error)

	// RunAutoPunchSweep and RunReminderPass are the scheduled entry points.
	// Both are idempotent within their window and isolate per-user failures.
	RunAutoPunchSweep(ctx context.Context, now time.Time) error
	RunReminderPass(ctx context.Context, now time.Time) error
}

package contract

import (
	"context"
	"time"

	"punchbot/internal/domain"
	"punchbot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	User() UserRepo
	Punch() PunchRepo
	Leave() LeaveRepo
	Reminder() ReminderRepo
}

// UserRepo defines the contract for the user repository
type UserRepo interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetBySlackID(slackUserID string) (*entity.User, error)
	Update(user *entity.User) error
	GetActiveUsers() ([]*entity.User, error)
	SetActive(userID int64, active bool) error
}

// PunchRepo defines the contract for the punch event repository. Events
// are append-only; there is no update or delete.
type PunchRepo interface {
	Create(event *entity.PunchEvent) error
	// GetByUserAndRange returns events with from <= timestamp < to,
	// ordered by timestamp ascending.
	GetByUserAndRange(userID int64, from, to time.Time) ([]*entity.PunchEvent, error)
	GetLastByUser(userID int64) (*entity.PunchEvent, error)
}

// LeaveRepo defines the contract for the leave record repository
type LeaveRepo interface {
	Create(leave *entity.LeaveRecord) error
	GetByID(id int64) (*entity.LeaveRecord, error)
	// GetApprovedOverlapping returns approved leaves intersecting the
	// inclusive [startDate, endDate] range.
	GetApprovedOverlapping(userID int64, startDate, endDate string) ([]*entity.LeaveRecord, error)
	// GetActiveForDate returns the pending or approved leave covering the
	// given date, or nil.
	GetActiveForDate(userID int64, date string) (*entity.LeaveRecord, error)
	GetByUser(userID int64, limit int) ([]*entity.LeaveRecord, error)
	UpdateStatus(id int64, status domain.LeaveStatus) error
}

// ReminderRepo defines the contract for persisted reminder marks
type ReminderRepo interface {
	WasSent(userID int64, kind, date string) (bool, error)
	MarkSent(userID int64, kind, date string) error
}

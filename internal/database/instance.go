package database

import (
	"context"
	"fmt"

	"punchbot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	userRepo     contract.UserRepo
	punchRepo    contract.PunchRepo
	leaveRepo    contract.LeaveRepo
	reminderRepo contract.ReminderRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.userRepo = newUserRepo(db.conn)
	i.punchRepo = newPunchRepo(db.conn)
	i.leaveRepo = newLeaveRepo(db.conn)
	i.reminderRepo = newReminderRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		userRepo:     newUserRepo(db),
		punchRepo:    newPunchRepo(db),
		leaveRepo:    newLeaveRepo(db),
		reminderRepo: newReminderRepo(db),
	}
}

func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

func (i *instance) Punch() contract.PunchRepo {
	return i.punchRepo
}

func (i *instance) Leave() contract.LeaveRepo {
	return i.leaveRepo
}

func (i *instance) Reminder() contract.ReminderRepo {
	return i.reminderRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

package database

import (
	"fmt"

	"punchbot/internal/domain/contract"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) WasSent(userID int64, kind, date string) (bool, error) {
	query := `SELECT COUNT(1) FROM reminder_marks WHERE user_id = ? AND kind = ? AND date = ?`

	var count int
	if err := r.db.QueryRow(query, userID, kind, date).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check reminder mark: %w", err)
	}

	return count > 0, nil
}

func (r *reminderRepo) MarkSent(userID int64, kind, date string) error {
	// INSERT OR IGNORE keeps concurrent passes idempotent via the
	// (user_id, kind, date) unique index.
	query := `INSERT OR IGNORE INTO reminder_marks (user_id, kind, date) VALUES (?, ?, ?)`

	_, err := r.db.Exec(query, userID, kind, date)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}

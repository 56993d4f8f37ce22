package database

import (
	"database/sql"
	"fmt"

	"punchbot/internal/domain"
	"punchbot/internal/domain/contract"
	"punchbot/internal/domain/entity"
)

type leaveRepo struct {
	db dbConn
}

func newLeaveRepo(db dbConn) contract.LeaveRepo {
	return &leaveRepo{db: db}
}

const leaveColumns = `id, user_id, start_date, end_date, leave_type, reason, status, created_at`

func (r *leaveRepo) Create(leave *entity.LeaveRecord) error {
	query := `
		INSERT INTO leave_records (user_id, start_date, end_date, leave_type, reason, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		leave.UserID,
		leave.StartDate,
		leave.EndDate,
		leave.LeaveType,
		leave.Reason,
		string(leave.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to create leave record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	leave.ID = id
	return nil
}

func (r *leaveRepo) GetByID(id int64) (*entity.LeaveRecord, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_records WHERE id = ?`
	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *leaveRepo) GetApprovedOverlapping(userID int64, startDate, endDate string) ([]*entity.LeaveRecord, error) {
	// Dates use the YYYY-MM-DD layout, so string comparison is date order.
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records
		WHERE user_id = ? AND status = ? AND start_date <= ? AND end_date >= ?
		ORDER BY start_date ASC
	`

	rows, err := r.db.Query(query, userID, string(domain.LeaveApproved), endDate, startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get overlapping leaves: %w", err)
	}
	defer rows.Close()

	return scanLeaves(rows)
}

func (r *leaveRepo) GetActiveForDate(userID int64, date string) (*entity.LeaveRecord, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records
		WHERE user_id = ? AND status IN (?, ?) AND start_date <= ? AND end_date >= ?
		ORDER BY start_date ASC
		LIMIT 1
	`

	row := r.db.QueryRow(query, userID,
		string(domain.LeavePending), string(domain.LeaveApproved), date, date)
	return r.scanOne(row)
}

func (r *leaveRepo) GetByUser(userID int64, limit int) ([]*entity.LeaveRecord, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records
		WHERE user_id = ?
		ORDER BY start_date DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave records: %w", err)
	}
	defer rows.Close()

	return scanLeaves(rows)
}

func (r *leaveRepo) UpdateStatus(id int64, status domain.LeaveStatus) error {
	query := `UPDATE leave_records SET status = ? WHERE id = ?`

	_, err := r.db.Exec(query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}

	return nil
}

func scanLeaves(rows *sql.Rows) ([]*entity.LeaveRecord, error) {
	var leaves []*entity.LeaveRecord
	for rows.Next() {
		leave := &entity.LeaveRecord{}
		var status string
		err := rows.Scan(
			&leave.ID,
			&leave.UserID,
			&leave.StartDate,
			&leave.EndDate,
			&leave.LeaveType,
			&leave.Reason,
			&status,
			&leave.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		leave.Status = domain.LeaveStatus(status)
		leaves = append(leaves, leave)
	}
	return leaves, nil
}

func (r *leaveRepo) scanOne(row *sql.Row) (*entity.LeaveRecord, error) {
	leave := &entity.LeaveRecord{}
	var status string
	err := row.Scan(
		&leave.ID,
		&leave.UserID,
		&leave.StartDate,
		&leave.EndDate,
		&leave.LeaveType,
		&leave.Reason,
		&status,
		&leave.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leave record: %w", err)
	}
	leave.Status = domain.LeaveStatus(status)
	return leave, nil
}

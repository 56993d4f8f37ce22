package database

import (
	"database/sql"
	"fmt"
	"time"

	"punchbot/internal/domain/contract"
	"punchbot/internal/domain/entity"
)

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepo{db: db}
}

const userColumns = `id, slack_user_id, slack_user_name, display_name, department,
	role, standard_hours, timezone, is_active, created_at, updated_at`

func (r *userRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (slack_user_id, slack_user_name, display_name, department, role, standard_hours, timezone, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		user.SlackUserID,
		user.SlackUserName,
		user.DisplayName,
		user.Department,
		user.Role,
		user.StandardHours,
		user.Timezone,
		user.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = id
	return nil
}

func (r *userRepo) GetByID(id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *userRepo) GetBySlackID(slackUserID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE slack_user_id = ?`
	return r.scanOne(r.db.QueryRow(query, slackUserID))
}

func (r *userRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET
			slack_user_name = ?,
			display_name = ?,
			department = ?,
			role = ?,
			standard_hours = ?,
			timezone = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		user.SlackUserName,
		user.DisplayName,
		user.Department,
		user.Role,
		user.StandardHours,
		user.Timezone,
		user.IsActive,
		time.Now().UTC(),
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *userRepo) GetActiveUsers() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_active = 1 ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user := &entity.User{}
		if err := scanUser(rows, user); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepo) SetActive(userID int64, active bool) error {
	query := `UPDATE users SET is_active = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, active, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to set user active status: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner, user *entity.User) error {
	return row.Scan(
		&user.ID,
		&user.SlackUserID,
		&user.SlackUserName,
		&user.DisplayName,
		&user.Department,
		&user.Role,
		&user.StandardHours,
		&user.Timezone,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

func (r *userRepo) scanOne(row *sql.Row) (*entity.User, error) {
	user := &entity.User{}
	err := scanUser(row, user)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

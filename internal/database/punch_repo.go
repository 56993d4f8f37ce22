package database

import (
	"database/sql"
	"fmt"
	"time"

	"punchbot/internal/domain"
	"punchbot/internal/domain/contract"
	"punchbot/internal/domain/entity"
)

type punchRepo struct {
	db dbConn
}

func newPunchRepo(db dbConn) contract.PunchRepo {
	return &punchRepo{db: db}
}

func (r *punchRepo) Create(event *entity.PunchEvent) error {
	query := `
		INSERT INTO punch_events (user_id, action, timestamp, is_auto, anomalous, note)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		event.UserID,
		string(event.Action),
		event.Timestamp.UTC(),
		event.IsAuto,
		event.Anomalous,
		event.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to create punch event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	event.ID = id
	return nil
}

func (r *punchRepo) GetByUserAndRange(userID int64, from, to time.Time) ([]*entity.PunchEvent, error) {
	query := `
		SELECT id, user_id, action, timestamp, is_auto, anomalous, note, created_at
		FROM punch_events
		WHERE user_id = ? AND timestamp >= ? AND timestamp < ?
		ORDER BY timestamp ASC
	`

	rows, err := r.db.Query(query, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get punch events: %w", err)
	}
	defer rows.Close()

	var events []*entity.PunchEvent
	for rows.Next() {
		event := &entity.PunchEvent{}
		var action string
		err := rows.Scan(
			&event.ID,
			&event.UserID,
			&action,
			&event.Timestamp,
			&event.IsAuto,
			&event.Anomalous,
			&event.Note,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		event.Action = domain.PunchAction(action)
		event.Timestamp = event.Timestamp.UTC()
		events = append(events, event)
	}

	return events, nil
}

func (r *punchRepo) GetLastByUser(userID int64) (*entity.PunchEvent, error) {
	query := `
		SELECT id, user_id, action, timestamp, is_auto, anomalous, note, created_at
		FROM punch_events
		WHERE user_id = ?
		ORDER BY timestamp DESC
		LIMIT 1
	`

	event := &entity.PunchEvent{}
	var action string
	err := r.db.QueryRow(query, userID).Scan(
		&event.ID,
		&event.UserID,
		&action,
		&event.Timestamp,
		&event.IsAuto,
		&event.Anomalous,
		&event.Note,
		&event.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last punch event: %w", err)
	}

	event.Action = domain.PunchAction(action)
	event.Timestamp = event.Timestamp.UTC()
	return event, nil
}

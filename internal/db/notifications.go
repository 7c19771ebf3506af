package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateNotification writes a notification for a user.
func (db *DB) CreateNotification(ctx context.Context, n *Notification) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO notifications (user_id, message, type)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		n.UserID, n.Message, n.Type,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return id, nil
}

// ListNotifications retrieves a user's notifications, newest first.
func (db *DB) ListNotifications(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, message, type, read, created_at
		 FROM notifications WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// ListNotificationsSince retrieves a user's notifications created after the
// given time, oldest first. Used by the live notification stream.
func (db *DB) ListNotificationsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Notification, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, message, type, read, created_at
		 FROM notifications WHERE user_id = $1 AND created_at > $2
		 ORDER BY created_at ASC`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkNotificationRead marks a single notification as read. Constrained to
// the owner so users cannot touch each other's notices.
func (db *DB) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("notification not found: %s", id)
	}
	return nil
}

// ClearNotifications removes all of a user's notifications.
func (db *DB) ClearNotifications(ctx context.Context, userID uuid.UUID) error {
	if _, err := db.pool.Exec(ctx,
		`DELETE FROM notifications WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}

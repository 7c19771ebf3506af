package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateMessage persists a message with a server-assigned timestamp and
// status "sent". Messages are never updated after this write.
func (db *DB) CreateMessage(ctx context.Context, m *Message) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO messages (sender_id, sender_email, recipient_email, body, skill_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		m.SenderID, m.SenderEmail, m.RecipientEmail, m.Body, m.SkillID, MessageStatusSent,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create message: %w", err)
	}
	return id, nil
}

// ListMessagesForUser retrieves messages where the user is sender or
// recipient, newest first.
func (db *DB) ListMessagesForUser(ctx context.Context, userID uuid.UUID, email string) ([]Message, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, sender_id, sender_email, recipient_email, body, skill_id, status, created_at
		 FROM messages
		 WHERE sender_id = $1 OR recipient_email = $2
		 ORDER BY created_at DESC`,
		userID, email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.SenderEmail, &m.RecipientEmail,
			&m.Body, &m.SkillID, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertContactMessage stores a contact form submission and returns its ID.
// An empty platform is recorded as PlatformWeb.
func (db *DB) InsertContactMessage(ctx context.Context, msg *ContactMessage) (uuid.UUID, error) {
	if msg == nil {
		return uuid.Nil, fmt.Errorf("contact message is nil")
	}

	id := msg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	platform := msg.Platform
	if platform == "" {
		platform = PlatformWeb
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (id, name, email, message, platform, remote_ip)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		id, msg.Name, msg.Email, msg.Message, platform, msg.RemoteIP,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert contact message: %w", err)
	}

	msg.ID = id
	msg.Platform = platform
	return id, nil
}

// GetContactMessage retrieves a contact message by ID. It returns nil, nil
// when no message exists.
func (db *DB) GetContactMessage(ctx context.Context, id uuid.UUID) (*ContactMessage, error) {
	var msg ContactMessage
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, message, platform, remote_ip, created_at
		 FROM contact_messages WHERE id = $1`,
		id,
	).Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.Platform, &msg.RemoteIP, &msg.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return &msg, nil
}

// ListContactMessages retrieves the most recent contact messages
func (db *DB) ListContactMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, message, platform, remote_ip, created_at
		 FROM contact_messages ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []ContactMessage
	for rows.Next() {
		var msg ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.Platform, &msg.RemoteIP, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact messages: %w", err)
	}
	return messages, nil
}

// DeleteContactMessage removes a contact message
func (db *DB) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return nil
}

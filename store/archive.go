package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	tonesdk "github.com/tonebridge-io/tonebridge-sdk-go"
)

// ──────────────────────────────────────────────
// SQLite message archive
// ──────────────────────────────────────────────

// Archive is a durable message log on SQLite. Unlike the live store it
// never trims: it exists so reaction suggestions and audits can reach
// further back than the Redis history cap.
type Archive struct {
	db     *sql.DB
	logger *zap.Logger
}

const archiveSchema = `
CREATE TABLE IF NOT EXISTS messages (
	id         TEXT PRIMARY KEY,
	room_id    TEXT NOT NULL,
	direction  TEXT NOT NULL,
	content    TEXT NOT NULL,
	emotion    TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_room_time ON messages(room_id, created_at);
`

// OpenArchive opens (and migrates) the archive database at path.
// A nil logger is replaced with a nop logger.
func OpenArchive(path string, logger *zap.Logger) (*Archive, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if _, err := db.Exec(archiveSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	logger.Info("message archive opened", zap.String("path", path))
	return &Archive{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error { return a.db.Close() }

// Save writes one message to the archive. Duplicate ids are ignored so
// replaying a session is safe.
func (a *Archive) Save(ctx context.Context, msg Message) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO messages (id, room_id, direction, content, emotion, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.RoomID, string(msg.Direction), msg.Content, string(msg.Emotion), msg.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("archive message: %w", err)
	}
	return nil
}

// History returns the room's most recent archived messages in
// chronological order. limit <= 0 returns everything.
func (a *Archive) History(ctx context.Context, roomID string, limit int) ([]Message, error) {
	query := `SELECT id, direction, content, emotion, created_at
		FROM messages WHERE room_id = ? ORDER BY created_at DESC, id DESC`
	args := []interface{}{roomID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("archive history: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var (
			msg       Message
			direction string
			emotion   string
			createdAt int64
		)
		if err := rows.Scan(&msg.ID, &direction, &msg.Content, &emotion, &createdAt); err != nil {
			return nil, fmt.Errorf("scan archive row: %w", err)
		}
		msg.RoomID = roomID
		msg.Direction = Direction(direction)
		msg.Emotion = tonesdk.EmotionLabel(emotion)
		msg.CreatedAt = time.UnixMilli(createdAt)
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive history: %w", err)
	}
	// reverse newest-first into chronological order
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// RoomCount returns how many messages the room has archived.
func (a *Archive) RoomCount(ctx context.Context, roomID string) (int, error) {
	var count int
	err := a.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM messages WHERE room_id = ?`, roomID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("archive count: %w", err)
	}
	return count, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/advisordesk/internal/domain"
)

// noteRepository implements domain.NoteRepository
type noteRepository struct {
	db *DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *DB) domain.NoteRepository {
	return &noteRepository{db: db}
}

// ListByClient retrieves every note owned by a client
func (r *noteRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Note, error) {
	query := `
		SELECT id, client_id, type, summary, description, created_at, origin_id, origin_name, author
		FROM notes
		WHERE client_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes for client %s: %w", clientID, err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// Append stores a new note
func (r *noteRepository) Append(ctx context.Context, note *domain.Note) error {
	query := `
		INSERT INTO notes (id, client_id, type, summary, description, created_at, origin_id, origin_name, author)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		note.ID,
		note.ClientID,
		string(note.Type),
		note.Summary,
		note.Description,
		note.CreatedAt,
		note.OriginID,
		note.OriginName,
		note.Author,
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	return nil
}

// GetByID retrieves a note by its ID
func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	query := `
		SELECT id, client_id, type, summary, description, created_at, origin_id, origin_name, author
		FROM notes
		WHERE id = $1
	`

	note, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: note %s", domain.ErrNotFound, id)
		}
		return nil, err
	}

	return note, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanNote scans one note row
func scanNote(row scanner) (*domain.Note, error) {
	var note domain.Note
	var noteType string

	err := row.Scan(
		&note.ID,
		&note.ClientID,
		&noteType,
		&note.Summary,
		&note.Description,
		&note.CreatedAt,
		&note.OriginID,
		&note.OriginName,
		&note.Author,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan note: %w", err)
	}

	note.Type = domain.NoteType(noteType)
	return &note, nil
}

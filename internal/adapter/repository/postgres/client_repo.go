package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/simaogato/advisordesk/internal/domain"
)

// clientDirectory implements domain.ClientDirectory
type clientDirectory struct {
	db *DB
}

// NewClientDirectory creates a new client directory
func NewClientDirectory(db *DB) domain.ClientDirectory {
	return &clientDirectory{db: db}
}

// Lookup retrieves a client by its ID
func (r *clientDirectory) Lookup(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT id, name
		FROM clients
		WHERE id = $1
	`

	var client domain.Client
	err := r.db.QueryRowContext(ctx, query, clientID).Scan(&client.ID, &client.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: client %s", domain.ErrNotFound, clientID)
		}
		return nil, fmt.Errorf("failed to look up client %s: %w", clientID, err)
	}

	return &client, nil
}

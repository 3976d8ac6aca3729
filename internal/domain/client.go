package domain

import "errors"

// Client represents an advisory client in the domain layer.
// Clients are supplied by the client directory and are immutable for the
// lifetime of a session.
type Client struct {
	ID   string
	Name string
}

// Validate ensures the client adheres to domain rules
// Returns an error if validation fails
func (c *Client) Validate() error {
	if c.ID == "" {
		return errors.New("client ID cannot be empty")
	}
	if c.Name == "" {
		return errors.New("client name cannot be empty")
	}
	return nil
}

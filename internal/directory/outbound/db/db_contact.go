package db

import (
	"context"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
)

func (s *DB) CreateContact(ctx context.Context, c entity.Contact) (_ *entity.Contact, err error) {
	ctx, span := s.startSpan(ctx, "CreateContact")
	defer func() { s.endSpan(span, err) }()

	err = s.conn.QueryRow(ctx,
		`INSERT INTO contacts (id, name, phone, email, category, message)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''))
		RETURNING created_at`,
		c.ID, c.Name, c.Phone, c.Email, c.Category, c.Message,
	).Scan(&c.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &c, nil
}

func (s *DB) ListContacts(ctx context.Context) (_ []entity.Contact, err error) {
	ctx, span := s.startSpan(ctx, "ListContacts")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx,
		`SELECT id, name, phone, COALESCE(email, ''), category, COALESCE(message, ''), created_at
		FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	items := make([]entity.Contact, 0)
	for rows.Next() {
		var c entity.Contact
		if err = rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Category, &c.Message, &c.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		items = append(items, c)
	}

	err = rows.Err()
	return items, s.mapError(err)
}

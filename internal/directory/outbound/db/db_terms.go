package db

import (
	"context"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
)

func (s *DB) GetTermsOfUse(ctx context.Context) (_ *entity.TermsOfUse, err error) {
	ctx, span := s.startSpan(ctx, "GetTermsOfUse")
	defer func() { s.endSpan(span, err) }()

	var terms entity.TermsOfUse
	err = s.conn.QueryRow(ctx,
		`SELECT id, content, updated_at, updated_by FROM terms_of_use ORDER BY id LIMIT 1`,
	).Scan(&terms.ID, &terms.Content, &terms.UpdatedAt, &terms.UpdatedBy)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &terms, nil
}

func (s *DB) CreateTermsOfUse(ctx context.Context, content string) (_ *entity.TermsOfUse, err error) {
	ctx, span := s.startSpan(ctx, "CreateTermsOfUse")
	defer func() { s.endSpan(span, err) }()

	var terms entity.TermsOfUse
	err = s.conn.QueryRow(ctx,
		`INSERT INTO terms_of_use (content) VALUES ($1)
		RETURNING id, content, updated_at, updated_by`,
		content,
	).Scan(&terms.ID, &terms.Content, &terms.UpdatedAt, &terms.UpdatedBy)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &terms, nil
}

// UpdateTermsOfUse rewrites the single document, creating it when missing.
func (s *DB) UpdateTermsOfUse(ctx context.Context, content string, updatedBy int64) (_ *entity.TermsOfUse, err error) {
	ctx, span := s.startSpan(ctx, "UpdateTermsOfUse")
	defer func() { s.endSpan(span, err) }()

	var terms entity.TermsOfUse
	err = s.conn.QueryRow(ctx,
		`UPDATE terms_of_use SET content = $1, updated_by = $2, updated_at = now()
		WHERE id = (SELECT id FROM terms_of_use ORDER BY id LIMIT 1)
		RETURNING id, content, updated_at, updated_by`,
		content, updatedBy,
	).Scan(&terms.ID, &terms.Content, &terms.UpdatedAt, &terms.UpdatedBy)
	if err == nil {
		return &terms, nil
	}

	err = s.conn.QueryRow(ctx,
		`INSERT INTO terms_of_use (content, updated_by) VALUES ($1, $2)
		RETURNING id, content, updated_at, updated_by`,
		content, updatedBy,
	).Scan(&terms.ID, &terms.Content, &terms.UpdatedAt, &terms.UpdatedBy)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &terms, nil
}

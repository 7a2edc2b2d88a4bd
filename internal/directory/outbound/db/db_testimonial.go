package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/ManecoGomes/busca-social/internal/directory/entity"
)

const selectTestimonialSQL = `SELECT id, name, profession, testimony, rating, is_approved, created_at FROM testimonials`

func scanTestimonial(row pgx.Row) (entity.Testimonial, error) {
	var t entity.Testimonial
	var approved int

	if err := row.Scan(&t.ID, &t.Name, &t.Profession, &t.Testimony, &t.Rating, &approved, &t.CreatedAt); err != nil {
		return entity.Testimonial{}, err
	}

	t.IsApproved = approved == 1
	return t, nil
}

func (s *DB) CreateTestimonial(ctx context.Context, t entity.Testimonial) (_ *entity.Testimonial, err error) {
	ctx, span := s.startSpan(ctx, "CreateTestimonial")
	defer func() { s.endSpan(span, err) }()

	err = s.conn.QueryRow(ctx,
		`INSERT INTO testimonials (id, name, profession, testimony, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		t.ID, t.Name, t.Profession, t.Testimony, t.Rating,
	).Scan(&t.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &t, nil
}

func (s *DB) ListApprovedTestimonials(ctx context.Context) (_ []entity.Testimonial, err error) {
	ctx, span := s.startSpan(ctx, "ListApprovedTestimonials")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, selectTestimonialSQL+` WHERE is_approved = 1 ORDER BY created_at DESC`)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	items := make([]entity.Testimonial, 0)
	for rows.Next() {
		t, errScan := scanTestimonial(rows)
		if errScan != nil {
			err = errScan
			return nil, s.mapError(err)
		}
		items = append(items, t)
	}

	err = rows.Err()
	return items, s.mapError(err)
}

func (s *DB) ApproveTestimonial(ctx context.Context, id string) (_ *entity.Testimonial, err error) {
	ctx, span := s.startSpan(ctx, "ApproveTestimonial")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`UPDATE testimonials SET is_approved = 1 WHERE id = $1
		RETURNING id, name, profession, testimony, rating, is_approved, created_at`,
		id,
	)

	t, err := scanTestimonial(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &t, nil
}

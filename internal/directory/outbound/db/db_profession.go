package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/ManecoGomes/busca-social/internal/directory/entity"
)

const selectProfessionSQL = `SELECT id, name, COALESCE(category, ''), is_active, created_at FROM professions`

func scanProfession(row pgx.Row) (entity.Profession, error) {
	var p entity.Profession
	var active int

	if err := row.Scan(&p.ID, &p.Name, &p.Category, &active, &p.CreatedAt); err != nil {
		return entity.Profession{}, err
	}

	p.IsActive = active == 1
	return p, nil
}

func (s *DB) collectProfessions(rows pgx.Rows) ([]entity.Profession, error) {
	defer rows.Close()

	items := make([]entity.Profession, 0)
	for rows.Next() {
		p, err := scanProfession(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}

	return items, rows.Err()
}

func (s *DB) ListProfessions(ctx context.Context) (_ []entity.Profession, err error) {
	ctx, span := s.startSpan(ctx, "ListProfessions")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, selectProfessionSQL+` ORDER BY name`)
	if err != nil {
		return nil, s.mapError(err)
	}

	items, err := s.collectProfessions(rows)
	return items, s.mapError(err)
}

func (s *DB) ListActiveProfessions(ctx context.Context) (_ []entity.Profession, err error) {
	ctx, span := s.startSpan(ctx, "ListActiveProfessions")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, selectProfessionSQL+` WHERE is_active = 1 ORDER BY name`)
	if err != nil {
		return nil, s.mapError(err)
	}

	items, err := s.collectProfessions(rows)
	return items, s.mapError(err)
}

func (s *DB) CountProfessions(ctx context.Context) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "CountProfessions")
	defer func() { s.endSpan(span, err) }()

	var count int64
	err = s.conn.QueryRow(ctx, `SELECT count(*) FROM professions`).Scan(&count)
	return count, s.mapError(err)
}

func (s *DB) CreateProfession(ctx context.Context, name, category string) (_ *entity.Profession, err error) {
	ctx, span := s.startSpan(ctx, "CreateProfession")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`INSERT INTO professions (name, category) VALUES ($1, NULLIF($2, ''))
		RETURNING id, name, COALESCE(category, ''), is_active, created_at`,
		name, category,
	)

	p, err := scanProfession(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &p, nil
}

func (s *DB) UpdateProfession(ctx context.Context, id int64, patch entity.ProfessionPatch) (_ *entity.Profession, err error) {
	ctx, span := s.startSpan(ctx, "UpdateProfession")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`UPDATE professions SET
			name = COALESCE($2, name),
			category = COALESCE($3, category),
			is_active = COALESCE($4, is_active)
		WHERE id = $1
		RETURNING id, name, COALESCE(category, ''), is_active, created_at`,
		id, patch.Name, patch.Category, boolPtrToInt(patch.IsActive),
	)

	p, err := scanProfession(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &p, nil
}

func (s *DB) DeleteProfession(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "DeleteProfession")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM professions WHERE id = $1`, id)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() > 0, nil
}

func (s *DB) ToggleProfession(ctx context.Context, id int64) (_ *entity.Profession, err error) {
	ctx, span := s.startSpan(ctx, "ToggleProfession")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`UPDATE professions SET is_active = 1 - is_active WHERE id = $1
		RETURNING id, name, COALESCE(category, ''), is_active, created_at`,
		id,
	)

	p, err := scanProfession(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &p, nil
}

package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/ManecoGomes/busca-social/internal/directory/entity"
)

const selectCitySQL = `SELECT id, name, state, is_active, created_at FROM cities`

func scanCity(row pgx.Row) (entity.City, error) {
	var city entity.City
	var active int

	if err := row.Scan(&city.ID, &city.Name, &city.State, &active, &city.CreatedAt); err != nil {
		return entity.City{}, err
	}

	city.IsActive = active == 1
	return city, nil
}

func (s *DB) ListCities(ctx context.Context) (_ []entity.City, err error) {
	ctx, span := s.startSpan(ctx, "ListCities")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, selectCitySQL+` ORDER BY state, name`)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	items := make([]entity.City, 0)
	for rows.Next() {
		city, errScan := scanCity(rows)
		if errScan != nil {
			err = errScan
			return nil, s.mapError(err)
		}
		items = append(items, city)
	}

	err = rows.Err()
	return items, s.mapError(err)
}

func (s *DB) CreateCity(ctx context.Context, name, state string) (_ *entity.City, err error) {
	ctx, span := s.startSpan(ctx, "CreateCity")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`INSERT INTO cities (name, state) VALUES ($1, $2) RETURNING id, name, state, is_active, created_at`,
		name, state,
	)

	city, err := scanCity(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &city, nil
}

func (s *DB) UpdateCity(ctx context.Context, id int64, patch entity.CityPatch) (_ *entity.City, err error) {
	ctx, span := s.startSpan(ctx, "UpdateCity")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`UPDATE cities SET
			name = COALESCE($2, name),
			state = COALESCE($3, state),
			is_active = COALESCE($4, is_active)
		WHERE id = $1
		RETURNING id, name, state, is_active, created_at`,
		id, patch.Name, patch.State, boolPtrToInt(patch.IsActive),
	)

	city, err := scanCity(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &city, nil
}

func (s *DB) DeleteCity(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "DeleteCity")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() > 0, nil
}

func (s *DB) ToggleCity(ctx context.Context, id int64) (_ *entity.City, err error) {
	ctx, span := s.startSpan(ctx, "ToggleCity")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`UPDATE cities SET is_active = 1 - is_active WHERE id = $1
		RETURNING id, name, state, is_active, created_at`,
		id,
	)

	city, err := scanCity(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &city, nil
}

func boolPtrToInt(b *bool) *int {
	if b == nil {
		return nil
	}

	v := 0
	if *b {
		v = 1
	}
	return &v
}

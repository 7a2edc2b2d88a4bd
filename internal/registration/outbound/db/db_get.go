package db

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ManecoGomes/busca-social/internal/registration/entity"
)

const selectSubmissionSQL = `
SELECT id, COALESCE(names, ''), COALESCE(email, ''), input_mask_3, input_radio_1, checkbox,
	numeric_field, input_text, input_radio, COALESCE(multi_select, ''),
	COALESCE(multi_select_2, ''), COALESCE(multi_select_1, ''), dropdown_2,
	COALESCE(dropdown_1, ''), COALESCE(dropdown_3, ''), input_text_1, description,
	serial_number, ip, accepted_terms, COALESCE(webhook_status, 'pending'),
	COALESCE(webhook_test_status, 'pending'), created_at
FROM prestadores`

func scanSubmission(row pgx.Row) (entity.Submission, error) {
	var sub entity.Submission
	var accepted int
	var status, testStatus string

	err := row.Scan(
		&sub.ID, &sub.FullName, &sub.Email, &sub.Phone, &sub.RegistrationType, &sub.Gender,
		&sub.CPF, &sub.DisplayName, &sub.ProfessionCount, &sub.Service1,
		&sub.Service2, &sub.Service3, &sub.State,
		&sub.CityRJ, &sub.CityMG, &sub.Street, &sub.Description,
		&sub.SerialNumber, &sub.IP, &accepted, &status,
		&testStatus, &sub.CreatedAt,
	)
	if err != nil {
		return entity.Submission{}, err
	}

	sub.AcceptedTerms = accepted == 1
	sub.WebhookStatus = entity.WebhookStatus(status)
	sub.WebhookTestStatus = entity.WebhookStatus(testStatus)
	return sub, nil
}

func (s *DB) collectSubmissions(rows pgx.Rows) ([]entity.Submission, error) {
	defer rows.Close()

	items := make([]entity.Submission, 0)
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, sub)
	}

	return items, rows.Err()
}

func (s *DB) ListSubmissions(ctx context.Context) (_ []entity.Submission, err error) {
	ctx, span := s.startSpan(ctx, "ListSubmissions")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, selectSubmissionSQL+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, s.mapError(err)
	}

	items, err := s.collectSubmissions(rows)
	return items, s.mapError(err)
}

func (s *DB) QuerySubmissions(ctx context.Context, filter entity.QueryFilter) (_ []entity.Submission, err error) {
	ctx, span := s.startSpan(ctx, "QuerySubmissions")
	defer func() { s.endSpan(span, err) }()

	var conds []string
	var args []any

	if filter.State != "" {
		args = append(args, filter.State)
		conds = append(conds, "dropdown_2 = $1")
	}
	if filter.Profession != "" {
		args = append(args, "%"+filter.Profession+"%")
		p := len(args)
		conds = append(conds, strings.ReplaceAll(
			"(multi_select LIKE $N OR multi_select_2 LIKE $N OR multi_select_1 LIKE $N)",
			"$N", "$"+strconv.Itoa(p)))
	}

	query := selectSubmissionSQL
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, filter.Limit)
	query += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, s.mapError(err)
	}

	items, err := s.collectSubmissions(rows)
	return items, s.mapError(err)
}

func (s *DB) GetSubmissionBySerial(ctx context.Context, serialNumber int64) (_ *entity.Submission, err error) {
	ctx, span := s.startSpan(ctx, "GetSubmissionBySerial")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, selectSubmissionSQL+` WHERE serial_number = $1`, serialNumber)
	sub, err := scanSubmission(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &sub, nil
}

func (s *DB) GetStats(ctx context.Context) (_ *entity.Stats, err error) {
	ctx, span := s.startSpan(ctx, "GetStats")
	defer func() { s.endSpan(span, err) }()

	var stats entity.Stats

	counts := []struct {
		query string
		dst   *int64
	}{
		{`SELECT count(*) FROM prestadores`, &stats.TotalSubmissions},
		{`SELECT count(*) FROM contacts`, &stats.TotalContacts},
		{`SELECT count(*) FROM testimonials`, &stats.TotalTestimonials},
		{`SELECT count(*) FROM testimonials WHERE is_approved = 1`, &stats.TotalTestimonialsApproved},
	}
	for _, c := range counts {
		if err = s.conn.QueryRow(ctx, c.query).Scan(c.dst); err != nil {
			return nil, s.mapError(err)
		}
	}

	stats.ProfessionStats, err = s.groupedCount(ctx,
		`SELECT multi_select, count(*) FROM prestadores
		 WHERE multi_select IS NOT NULL AND multi_select <> ''
		 GROUP BY multi_select ORDER BY count(*) DESC LIMIT 10`)
	if err != nil {
		return nil, s.mapError(err)
	}

	stats.StateStats, err = s.groupedCount(ctx,
		`SELECT dropdown_2, count(*) FROM prestadores
		 WHERE dropdown_2 IS NOT NULL AND dropdown_2 <> ''
		 GROUP BY dropdown_2 ORDER BY count(*) DESC`)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &stats, nil
}

func (s *DB) groupedCount(ctx context.Context, query string) ([]entity.CountByKey, error) {
	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.CountByKey, 0)
	for rows.Next() {
		var item entity.CountByKey
		if err := rows.Scan(&item.Key, &item.Count); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}


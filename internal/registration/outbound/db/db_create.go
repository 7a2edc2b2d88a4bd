package db

import (
	"context"

	"github.com/ManecoGomes/busca-social/internal/registration/entity"
)

const insertSubmissionSQL = `
INSERT INTO prestadores (
	id, names, email, input_mask_3, input_radio_1, checkbox, numeric_field,
	input_text, input_radio, multi_select, multi_select_2, multi_select_1,
	dropdown_2, dropdown_1, dropdown_3, input_text_1, description,
	serial_number, ip, accepted_terms, webhook_status, webhook_test_status
) VALUES (
	$1, $2, $3, $4, $5, $6, $7,
	$8, $9, $10, $11, $12,
	$13, $14, $15, $16, $17,
	$18, $19, $20, $21, $22
)`

func (s *DB) CreateSubmission(ctx context.Context, sub entity.Submission) (err error) {
	ctx, span := s.startSpan(ctx, "CreateSubmission")
	defer func() { s.endSpan(span, err) }()

	accepted := 0
	if sub.AcceptedTerms {
		accepted = 1
	}

	_, err = s.conn.Exec(ctx, insertSubmissionSQL,
		sub.ID, sub.FullName, sub.Email, sub.Phone, sub.RegistrationType, sub.Gender, sub.CPF,
		sub.DisplayName, sub.ProfessionCount, sub.Service1, sub.Service2, sub.Service3,
		sub.State, sub.CityRJ, sub.CityMG, sub.Street, sub.Description,
		sub.SerialNumber, sub.IP, accepted, sub.WebhookStatus.String(), sub.WebhookTestStatus.String(),
	)
	return s.mapError(err)
}

func (s *DB) UpdateWebhookStatus(ctx context.Context, id string, status, testStatus entity.WebhookStatus) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateWebhookStatus")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx,
		`UPDATE prestadores SET webhook_status = $2, webhook_test_status = $3 WHERE id = $1`,
		id, status.String(), testStatus.String(),
	)
	return s.mapError(err)
}

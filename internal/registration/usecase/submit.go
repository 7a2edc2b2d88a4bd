package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/ManecoGomes/busca-social/internal/registration/entity"
)

// SubmitInput carries the raw form payload. JSON names are the public form's
// field name contract; Website is the hidden honeypot field and is never
// persisted or forwarded.
type SubmitInput struct {
	Website          string `json:"website"`
	FullName         string `json:"names"`
	Email            string `json:"email" validate:"omitempty,email"`
	Phone            string `json:"input_mask_3" validate:"required,phonedigits"`
	RegistrationType string `json:"input_radio_1" validate:"required"`
	Gender           string `json:"checkbox" validate:"required"`
	CPF              string `json:"numeric_field" validate:"required,cpf"`
	DisplayName      string `json:"input_text" validate:"required,min=2"`
	ProfessionCount  string `json:"input_radio" validate:"required"`
	Service1         string `json:"multi_select"`
	Service2         string `json:"multi_select_2"`
	Service3         string `json:"multi_select_1"`
	State            string `json:"dropdown_2" validate:"required"`
	CityRJ           string `json:"dropdown_1"`
	CityMG           string `json:"dropdown_3"`
	Street           string `json:"input_text_1" validate:"required"`
	Description      string `json:"description" validate:"required,min=10"`
	AcceptedTerms    bool   `json:"accepted_terms" validate:"eq=true"`

	// SourceIP is filled by the transport layer, not by the form.
	SourceIP string `json:"-"`
}

type SubmitOutput struct {
	Success      bool    `json:"success"`
	ID           *string `json:"id"`
	SerialNumber int64   `json:"serialNumber"`
	Message      string  `json:"message"`
}

// Submit runs the registration pipeline: honeypot check, validation, serial
// assignment, phone normalization, dual webhook fan-out with a best-effort
// database insert, then detached confirmation emails after the response is
// decided.
func (s *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitOutput, error) {
	ctx, span := s.startSpan(ctx, "Submit")
	defer span.End()

	if in.Website != "" {
		slog.WarnContext(ctx, "honeypot field filled, rejecting submission", "ip", in.SourceIP)
		return nil, goerror.NewInvalidFormat("Invalid submission")
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	// The serial is issued before normalization, so a phone the validator let
	// through but the normalizer rejects still consumes a number.
	serialNumber := s.serial.Next(ctx)

	phone, err := entity.NormalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}

	submittedAt := s.clock.Now()

	slog.InfoContext(ctx, "registration submission accepted",
		"serial_number", serialNumber, "ip", in.SourceIP, "phone", phone)

	sub := entity.Submission{
		ID:                s.uuid.Generate(),
		SerialNumber:      serialNumber,
		FullName:          in.FullName,
		Email:             in.Email,
		Phone:             phone,
		RegistrationType:  in.RegistrationType,
		Gender:            in.Gender,
		CPF:               in.CPF,
		DisplayName:       in.DisplayName,
		ProfessionCount:   in.ProfessionCount,
		Service1:          in.Service1,
		Service2:          in.Service2,
		Service3:          in.Service3,
		State:             in.State,
		CityRJ:            in.CityRJ,
		CityMG:            in.CityMG,
		Street:            in.Street,
		Description:       in.Description,
		IP:                in.SourceIP,
		AcceptedTerms:     in.AcceptedTerms,
		WebhookStatus:     entity.WebhookStatusPending,
		WebhookTestStatus: entity.WebhookStatusPending,
		CreatedAt:         submittedAt,
	}

	payload := s.webhookPayload(in, phone, serialNumber, submittedAt)
	summary := s.dispatch(ctx, sub, payload)

	var id *string
	if summary.Persist.Succeeded {
		id = &sub.ID
		s.recordWebhookStatus(ctx, sub.ID, summary)
	}

	out := &SubmitOutput{
		Success:      true,
		ID:           id,
		SerialNumber: serialNumber,
		Message:      "Cadastro enviado com sucesso! Você receberá um retorno em breve.",
	}

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		s.sendConfirmationEmails(ctx, sub)
		return nil
	})

	return out, nil
}

// webhookPayload flattens the validated fields, overrides the phone with its
// canonical form and appends the submission envelope. Both webhooks receive
// the identical document.
func (s *Usecase) webhookPayload(in SubmitInput, phone string, serialNumber int64, submittedAt time.Time) map[string]any {
	return map[string]any{
		"names":          in.FullName,
		"email":          in.Email,
		"input_mask_3":   phone,
		"input_radio_1":  in.RegistrationType,
		"checkbox":       in.Gender,
		"numeric_field":  in.CPF,
		"input_text":     in.DisplayName,
		"input_radio":    in.ProfessionCount,
		"multi_select":   in.Service1,
		"multi_select_2": in.Service2,
		"multi_select_1": in.Service3,
		"dropdown_2":     in.State,
		"dropdown_1":     in.CityRJ,
		"dropdown_3":     in.CityMG,
		"input_text_1":   in.Street,
		"description":    in.Description,
		"submission": map[string]any{
			"serial_number":  serialNumber,
			"ip":             in.SourceIP,
			"accepted_terms": in.AcceptedTerms,
		},
		"submittedAt": submittedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (s *Usecase) recordWebhookStatus(ctx context.Context, id string, summary DispatchSummary) {
	status := entity.WebhookStatusSent
	if !summary.Production.Succeeded {
		status = entity.WebhookStatusFailed
	}
	testStatus := entity.WebhookStatusSent
	if !summary.Test.Succeeded {
		testStatus = entity.WebhookStatusFailed
	}

	if err := s.repoDB.UpdateWebhookStatus(ctx, id, status, testStatus); err != nil {
		slog.WarnContext(ctx, "failed to record webhook status", "id", id, "error", err)
	}
}

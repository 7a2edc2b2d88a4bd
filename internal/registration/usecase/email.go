package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/ManecoGomes/busca-social/internal/pkg/mail"
	"github.com/ManecoGomes/busca-social/internal/registration/entity"
)

// sendConfirmationEmails renders one confirmation document and sends it to
// the registrant (when an address was given) and always to the internal copy
// address. Failures are logged only; the response was already sent.
func (s *Usecase) sendConfirmationEmails(ctx context.Context, sub entity.Submission) {
	body, err := s.renderConfirmation(sub)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render confirmation email",
			"serial_number", sub.SerialNumber, "error", err)
		return
	}

	if sub.Email != "" {
		msg := mail.Message{
			To:       []string{sub.Email},
			Subject:  fmt.Sprintf("✅ Cadastro Confirmado - Busca Social #%d", sub.SerialNumber),
			HTMLBody: body,
		}
		if err := s.repoMail.Send(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "failed to send confirmation email to registrant",
				"serial_number", sub.SerialNumber, "error", err)
		}
	}

	copyTo := s.cfg.GetString("registration.email_copy_to")
	if copyTo == "" {
		slog.WarnContext(ctx, "copy email address not configured, skipping")
		return
	}

	msg := mail.Message{
		To:       []string{copyTo},
		Subject:  fmt.Sprintf("🆕 Novo Cadastro - %s #%d", sub.DisplayName, sub.SerialNumber),
		HTMLBody: body,
	}
	if err := s.repoMail.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to send confirmation copy email",
			"serial_number", sub.SerialNumber, "copy_to", copyTo, "error", err)
	}
}

func (s *Usecase) renderConfirmation(sub entity.Submission) (string, error) {
	t, err := template.New("confirmation").Parse(confirmationTemplate)
	if err != nil {
		return "", err
	}

	greetingName := sub.FullName
	if greetingName == "" {
		greetingName = sub.DisplayName
	}

	email := sub.Email
	if email == "" {
		email = "Não informado"
	}

	data := map[string]any{
		"GreetingName":    greetingName,
		"SerialNumber":    sub.SerialNumber,
		"TipoCadastro":    registrationTypeLabel(sub.RegistrationType),
		"NomeCompleto":    sub.FullName,
		"NomeDivulgar":    sub.DisplayName,
		"Sexo":            genderLabel(sub.Gender),
		"CPF":             sub.CPF,
		"WhatsApp":        sub.Phone,
		"Email":           email,
		"QtdeProfissoes":  professionCountLabel(sub.ProfessionCount),
		"Servico1":        sub.Service1,
		"Servico2":        sub.Service2,
		"Servico3":        sub.Service3,
		"Estado":          sub.State,
		"CidadeRJ":        sub.CityRJ,
		"CidadeMG":        sub.CityMG,
		"Logradouro":      sub.Street,
		"Descricao":       sub.Description,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func registrationTypeLabel(v string) string {
	if v == "1" {
		return "Profissional Autônomo"
	}
	return "Empresa"
}

func genderLabel(v string) string {
	switch v {
	case "1":
		return "Masculino"
	case "2":
		return "Feminino"
	default:
		return "Outro"
	}
}

func professionCountLabel(v string) string {
	switch v {
	case "1":
		return "1 Profissão"
	case "2":
		return "2 Profissões"
	default:
		return "3 Profissões"
	}
}

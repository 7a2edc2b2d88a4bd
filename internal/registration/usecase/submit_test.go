package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ManecoGomes/busca-social/internal/pkg/clock"
	"github.com/ManecoGomes/busca-social/internal/pkg/config"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/ManecoGomes/busca-social/internal/pkg/goroutine"
	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"github.com/ManecoGomes/busca-social/internal/pkg/mail"
	"github.com/ManecoGomes/busca-social/internal/pkg/uid"
	"github.com/ManecoGomes/busca-social/internal/pkg/validator"
	"github.com/ManecoGomes/busca-social/internal/registration/entity"
)

type fakeRepoDB struct {
	mu         sync.Mutex
	created    []entity.Submission
	createErr  error
	status     entity.WebhookStatus
	testStatus entity.WebhookStatus
	updated    bool
}

func (f *fakeRepoDB) CreateSubmission(_ context.Context, sub entity.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, sub)
	return nil
}

func (f *fakeRepoDB) UpdateWebhookStatus(_ context.Context, _ string, status, testStatus entity.WebhookStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = true
	f.status = status
	f.testStatus = testStatus
	return nil
}

func (f *fakeRepoDB) ListSubmissions(context.Context) ([]entity.Submission, error) {
	return nil, nil
}

func (f *fakeRepoDB) QuerySubmissions(context.Context, entity.QueryFilter) ([]entity.Submission, error) {
	return nil, nil
}

func (f *fakeRepoDB) GetSubmissionBySerial(context.Context, int64) (*entity.Submission, error) {
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) GetStats(context.Context) (*entity.Stats, error) {
	return &entity.Stats{}, nil
}

type fakeWebhook struct {
	mu     sync.Mutex
	urls   []string
	errFor map[string]error
}

func (f *fakeWebhook) Deliver(_ context.Context, url string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	return f.errFor[url]
}

type fakeMail struct {
	mu      sync.Mutex
	sent    []mail.Message
	pingErr error
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMail) Ping(context.Context) error { return f.pingErr }

type fakeSerial struct {
	mu   sync.Mutex
	last int64
}

func (f *fakeSerial) Next(context.Context) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last++
	return f.last
}

const testConfigYAML = `
registration:
  webhook_production_url: https://hooks.example.com/prod
  webhook_test_url: https://hooks.example.com/test
  email_copy_to: copia@example.com
`

func newTestUsecase(t *testing.T, repo *fakeRepoDB, hook *fakeWebhook, mailer *fakeMail) (*Usecase, *goroutine.Manager, *fakeSerial) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	manager := goroutine.NewManager(4)
	serial := &fakeSerial{}

	uc := NewRegistration(Dependency{
		RepoDB:      repo,
		RepoWebhook: hook,
		RepoMail:    mailer,
		Serial:      serial,
		Config:      cfg,
		Clock:       clock.New(),
		UUID:        uid.NewUUID(),
		Validator:   v10,
		Goroutine:   manager,
		Instrument:  instrument.NewNoop(),
	})

	return uc, manager, serial
}

func validInput() SubmitInput {
	return SubmitInput{
		FullName:         "Maria da Silva",
		Email:            "maria@example.com",
		Phone:            "(24) 98841-8058",
		RegistrationType: "1",
		Gender:           "2",
		CPF:              "52998224725",
		DisplayName:      "Maria Manicure",
		ProfessionCount:  "1",
		Service1:         "Manicure",
		State:            "RJ",
		CityRJ:           "Volta Redonda",
		Street:           "Rua das Flores, 100",
		Description:      "Atendimento a domicílio com hora marcada.",
		AcceptedTerms:    true,
		SourceIP:         "203.0.113.7",
	}
}

func TestSubmit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{}
		hook := &fakeWebhook{}
		mailer := &fakeMail{}
		uc, manager, _ := newTestUsecase(t, repo, hook, mailer)

		// Act
		out, err := uc.Submit(context.Background(), validInput())

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Fatalf("expected success response")
		}
		if out.SerialNumber != 1 {
			t.Fatalf("expected serial number 1, got %d", out.SerialNumber)
		}
		if out.ID == nil {
			t.Fatalf("expected persisted id in response")
		}
		if len(hook.urls) != 2 {
			t.Fatalf("expected both webhooks called, got %v", hook.urls)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected one persisted submission, got %d", len(repo.created))
		}
		if repo.created[0].Phone != "+55(24)988418058" {
			t.Fatalf("expected normalized phone, got %q", repo.created[0].Phone)
		}
		if !repo.updated || repo.status != entity.WebhookStatusSent || repo.testStatus != entity.WebhookStatusSent {
			t.Fatalf("expected webhook statuses recorded as sent, got %v/%v", repo.status, repo.testStatus)
		}

		if err := manager.Wait(); err != nil {
			t.Fatalf("unexpected goroutine error: %v", err)
		}
		if len(mailer.sent) != 2 {
			t.Fatalf("expected registrant and copy emails, got %d", len(mailer.sent))
		}
	})

	t.Run("HoneypotRejected", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{}
		hook := &fakeWebhook{}
		uc, _, _ := newTestUsecase(t, repo, hook, &fakeMail{})

		in := validInput()
		in.Website = "http://spam.example.com"

		// Act
		_, err := uc.Submit(context.Background(), in)

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.Msg() != "Invalid submission" {
			t.Fatalf("unexpected message %q", gerr.Msg())
		}
		if gerr.StatusCode() != 400 {
			t.Fatalf("expected status 400, got %d", gerr.StatusCode())
		}
		if len(hook.urls) != 0 || len(repo.created) != 0 {
			t.Fatalf("expected no side effects on honeypot rejection")
		}
	})

	t.Run("InvalidCPF", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{}
		hook := &fakeWebhook{}
		uc, _, _ := newTestUsecase(t, repo, hook, &fakeMail{})

		in := validInput()
		in.CPF = "52998224726"

		// Act
		_, err := uc.Submit(context.Background(), in)

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 400 {
			t.Fatalf("expected status 400, got %d", gerr.StatusCode())
		}
		if len(hook.urls) != 0 {
			t.Fatalf("expected no webhook calls on validation failure")
		}
	})

	t.Run("TermsNotAccepted", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{}
		hook := &fakeWebhook{}
		uc, _, serial := newTestUsecase(t, repo, hook, &fakeMail{})

		in := validInput()
		in.AcceptedTerms = false

		// Act
		_, err := uc.Submit(context.Background(), in)

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 400 {
			t.Fatalf("expected status 400, got %d", gerr.StatusCode())
		}
		if len(hook.urls) != 0 || len(repo.created) != 0 {
			t.Fatalf("expected no side effects when terms were not accepted")
		}
		if serial.last != 0 {
			t.Fatalf("expected no serial issued on validation failure, got %d", serial.last)
		}
	})

	t.Run("UnnormalizablePhoneConsumesSerial", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{}
		hook := &fakeWebhook{}
		uc, _, serial := newTestUsecase(t, repo, hook, &fakeMail{})

		in := validInput()
		in.Phone = "123456789012" // 12 digits without a country code

		// Act
		_, err := uc.Submit(context.Background(), in)

		// Assert
		if err == nil {
			t.Fatalf("expected normalization error")
		}
		if serial.last != 1 {
			t.Fatalf("expected the rejected submission to consume a serial, got %d", serial.last)
		}
		if len(hook.urls) != 0 || len(repo.created) != 0 {
			t.Fatalf("expected no fan-out for an unnormalizable phone")
		}

		// Act: the next valid submission continues the sequence.
		out, err := uc.Submit(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SerialNumber != 2 {
			t.Fatalf("expected serial 2 after a burned number, got %d", out.SerialNumber)
		}
	})

	t.Run("WebhookFailureStillSucceeds", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{}
		hook := &fakeWebhook{errFor: map[string]error{
			"https://hooks.example.com/prod": errors.New("boom"),
		}}
		uc, _, _ := newTestUsecase(t, repo, hook, &fakeMail{})

		// Act
		out, err := uc.Submit(context.Background(), validInput())

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success || out.ID == nil {
			t.Fatalf("expected successful response despite webhook failure")
		}
		if repo.status != entity.WebhookStatusFailed || repo.testStatus != entity.WebhookStatusSent {
			t.Fatalf("expected failed/sent statuses, got %v/%v", repo.status, repo.testStatus)
		}
	})

	t.Run("PersistFailureReturnsNilID", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{createErr: errors.New("db down")}
		hook := &fakeWebhook{}
		uc, _, _ := newTestUsecase(t, repo, hook, &fakeMail{})

		// Act
		out, err := uc.Submit(context.Background(), validInput())

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Fatalf("expected success response")
		}
		if out.ID != nil {
			t.Fatalf("expected nil id when persistence fails")
		}
		if repo.updated {
			t.Fatalf("expected no webhook status update when record was not persisted")
		}
		if len(hook.urls) != 2 {
			t.Fatalf("expected webhooks still delivered, got %v", hook.urls)
		}
	})

	t.Run("DistinctSerials", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{}
		uc, _, _ := newTestUsecase(t, repo, &fakeWebhook{}, &fakeMail{})

		// Act
		first, err := uc.Submit(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Submit(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if first.SerialNumber == second.SerialNumber {
			t.Fatalf("expected distinct serial numbers, got %d twice", first.SerialNumber)
		}
	})
}

func TestTestEmail(t *testing.T) {
	// Arrange
	okMailer := &fakeMail{}
	downMailer := &fakeMail{pingErr: errors.New("connection refused")}
	ucOK, _, _ := newTestUsecase(t, &fakeRepoDB{}, &fakeWebhook{}, okMailer)
	ucDown, _, _ := newTestUsecase(t, &fakeRepoDB{}, &fakeWebhook{}, downMailer)

	// Act / Assert
	if !ucOK.TestEmail(context.Background()) {
		t.Fatalf("expected successful SMTP probe")
	}
	if ucDown.TestEmail(context.Background()) {
		t.Fatalf("expected failed SMTP probe")
	}
}

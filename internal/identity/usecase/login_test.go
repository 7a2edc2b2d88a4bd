package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ManecoGomes/busca-social/internal/identity/entity"
	"github.com/ManecoGomes/busca-social/internal/pkg/config"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/ManecoGomes/busca-social/internal/pkg/hash"
	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"github.com/ManecoGomes/busca-social/internal/pkg/jwt"
	"github.com/ManecoGomes/busca-social/internal/pkg/validator"
)

type fakeUserRepo struct {
	users   map[string]entity.User
	created []entity.User
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u entity.User) (*entity.User, error) {
	u.ID = int64(len(f.created) + 1)
	f.created = append(f.created, u)
	if f.users == nil {
		f.users = map[string]entity.User{}
	}
	f.users[u.Email] = u
	return &u, nil
}

type fakeJWT struct {
	token string
	err   error
}

func (f *fakeJWT) Generate(int64, string, string) (string, error) { return f.token, f.err }

func (f *fakeJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, nil }

func newIdentityUsecase(t *testing.T, repo *fakeUserRepo, cfgYAML string) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(cfgYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	return NewIdentity(Dependency{
		RepoDB:     repo,
		Config:     cfg,
		JWT:        &fakeJWT{token: "signed-token"},
		Hash:       hash.NewBcrypt(4, ""),
		Validator:  v10,
		Instrument: instrument.NewNoop(),
	})
}

func TestLogin(t *testing.T) {
	hasher := hash.NewBcrypt(4, "")
	hashed, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	repo := &fakeUserRepo{users: map[string]entity.User{
		"admin@example.com": {
			ID:       1,
			Username: "admin",
			Email:    "admin@example.com",
			Password: string(hashed),
			Role:     "admin",
		},
	}}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		uc := newIdentityUsecase(t, repo, "{}")

		// Act
		out, err := uc.Login(context.Background(), LoginInput{Email: "admin@example.com", Password: "s3cret"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token != "signed-token" {
			t.Fatalf("unexpected token %q", out.Token)
		}
		if out.User.ID != 1 || out.User.Role != "admin" {
			t.Fatalf("unexpected user %+v", out.User)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		// Arrange
		uc := newIdentityUsecase(t, repo, "{}")

		// Act
		_, err := uc.Login(context.Background(), LoginInput{Email: "admin@example.com", Password: "wrong"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 401 {
			t.Fatalf("expected status 401, got %d", gerr.StatusCode())
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		// Arrange
		uc := newIdentityUsecase(t, repo, "{}")

		// Act
		_, err := uc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "s3cret"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 401 {
			t.Fatalf("expected status 401, got %d", gerr.StatusCode())
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		// Arrange
		uc := newIdentityUsecase(t, repo, "{}")

		// Act
		_, err := uc.Login(context.Background(), LoginInput{})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 400 {
			t.Fatalf("expected status 400, got %d", gerr.StatusCode())
		}
	})
}

func TestEnsureAdmin(t *testing.T) {
	const cfgYAML = `
identity:
  admin_username: admin
  admin_email: admin@example.com
  admin_password: s3cret
`

	// Arrange
	repo := &fakeUserRepo{}
	uc := newIdentityUsecase(t, repo, cfgYAML)

	// Act
	if err := uc.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	if len(repo.created) != 1 {
		t.Fatalf("expected one seeded account, got %d", len(repo.created))
	}
	if repo.created[0].Role != "admin" {
		t.Fatalf("expected admin role, got %q", repo.created[0].Role)
	}
	if repo.created[0].Password == "s3cret" {
		t.Fatalf("expected hashed password in storage")
	}

	// Act: second run must be a no-op.
	if err := uc.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected rerun to add nothing, got %d", len(repo.created))
	}
}

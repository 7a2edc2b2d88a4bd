package validator

import (
	"errors"
	"testing"
)

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{name: "Valid", cpf: "52998224725", want: true},
		{name: "FlippedCheckDigit", cpf: "52998224726", want: false},
		{name: "AllDigitsEqual", cpf: "11111111111", want: false},
		{name: "TooShort", cpf: "5299822472", want: false},
		{name: "TooLong", cpf: "529982247250", want: false},
		{name: "NonDigit", cpf: "529.982.247", want: false},
		{name: "Empty", cpf: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidCPF(tc.cpf); got != tc.want {
				t.Fatalf("ValidCPF(%q) = %v, want %v", tc.cpf, got, tc.want)
			}
		})
	}
}

func TestV10Validator(t *testing.T) {
	type form struct {
		CPF   string `json:"numeric_field" validate:"required,cpf"`
		Phone string `json:"input_mask_3" validate:"required,phonedigits"`
		Name  string `json:"input_text" validate:"required,min=2"`
	}

	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	t.Run("Valid", func(t *testing.T) {
		// Arrange
		in := form{CPF: "52998224725", Phone: "(24) 98841-8058", Name: "Maria"}

		// Act / Assert
		if err := v.Validate(in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("FieldKeysUseJSONNames", func(t *testing.T) {
		// Arrange
		in := form{CPF: "123", Phone: "99", Name: "M"}

		// Act
		err := v.Validate(in)

		// Assert
		var verr V10ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected V10ValidationError, got %v", err)
		}
		if _, ok := verr["numeric_field"]; !ok {
			t.Fatalf("expected numeric_field key, got %v", verr)
		}
		if _, ok := verr["input_mask_3"]; !ok {
			t.Fatalf("expected input_mask_3 key, got %v", verr)
		}
		if _, ok := verr["input_text"]; !ok {
			t.Fatalf("expected input_text key, got %v", verr)
		}
	})

	t.Run("TranslatedMessages", func(t *testing.T) {
		// Arrange
		in := form{CPF: "52998224726", Phone: "123", Name: "Maria"}

		// Act
		err := v.Validate(in)

		// Assert
		var verr V10ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected V10ValidationError, got %v", err)
		}
		if verr["numeric_field"] != "CPF inválido" {
			t.Fatalf("unexpected cpf message %q", verr["numeric_field"])
		}
		if verr["input_mask_3"] != "Telefone deve ter pelo menos 10 dígitos" {
			t.Fatalf("unexpected phone message %q", verr["input_mask_3"])
		}
	})
}

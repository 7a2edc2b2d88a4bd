package entity

import (
	"fmt"
	"strings"

	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
)

// NormalizePhone canonicalizes a Brazilian phone number into +55(AA)NNNNNNNNN.
//
// All non-digit characters are stripped. A leading 55 country code is removed
// when the remainder still forms a valid local number, so "+55" typed by the
// user is not mistaken for the area code 55. Eight-digit subscriber numbers
// gain the mobile 9 prefix.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, "55") && (len(digits) == 12 || len(digits) == 13) {
		rest := digits[2:]
		if len(rest) == 10 || len(rest) == 11 {
			digits = rest
		}
	}

	if len(digits) < 10 || len(digits) > 11 {
		return "", goerror.NewInvalidInput(nil, "input_mask_3",
			fmt.Sprintf("WhatsApp inválido: digite apenas DDD + número (10 ou 11 dígitos). Recebido: %d dígitos", len(digits)))
	}

	area := digits[:2]
	subscriber := digits[2:]
	if len(subscriber) == 8 {
		subscriber = "9" + subscriber
	}
	if len(subscriber) != 9 {
		return "", goerror.NewInvalidInput(nil, "input_mask_3",
			fmt.Sprintf("WhatsApp inválido: número deve ter 8 ou 9 dígitos (recebido: %d)", len(subscriber)))
	}

	return fmt.Sprintf("+55(%s)%s", area, subscriber), nil
}

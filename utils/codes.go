package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const confirmationDigits = "0123456789"

// ConfirmationCodeLength is the generated length; validation accepts the
// full 6-20 range so externally imported codes keep working.
const ConfirmationCodeLength = 10

const (
	minConfirmationCodeLen = 6
	maxConfirmationCodeLen = 20
)

// GenerateConfirmationCode returns a random numeric code. Uses crypto/rand
// with rand.Int to avoid modulo bias.
func GenerateConfirmationCode() (string, error) {
	return generateNumericCode(ConfirmationCodeLength)
}

func generateNumericCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid code length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(confirmationDigits)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(confirmationDigits[num.Int64()])
	}
	return sb.String(), nil
}

// IsValidConfirmationCode reports whether code is 6-20 numeric characters.
func IsValidConfirmationCode(code string) bool {
	code = strings.TrimSpace(code)
	if len(code) < minConfirmationCodeLen || len(code) > maxConfirmationCodeLen {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

package model

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"math/big"
	"unicode"
)

// saltSize is the length of a freshly generated HMAC-SHA512 key.
const saltSize = 64

var (
	randRead = rand.Read
	randInt  = rand.Int
)

// ValidateStrongPassword enforces the account password policy: at least
// eight characters, one uppercase letter and one digit. Returns a
// ValidationError describing the first violated rule.
func ValidateStrongPassword(password string) error {
	if len(password) < 8 {
		return NewValidationError("password must be at least 8 characters long")
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return NewValidationError("password must contain at least one uppercase letter")
	}
	if !hasDigit {
		return NewValidationError("password must contain at least one digit")
	}
	return nil
}

// HashPassword computes HMAC-SHA512 over the UTF-8 password using salt as
// the key. A nil salt generates a fresh random 64-byte key; verification
// passes the stored salt so the hash can be recomputed deterministically.
func HashPassword(password string, salt []byte) (hash, usedSalt []byte, err error) {
	if salt == nil {
		salt = make([]byte, saltSize)
		if _, err := randRead(salt); err != nil {
			return nil, nil, fmt.Errorf("HashPassword: %w", err)
		}
	}
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil), salt, nil
}

// VerifyPassword recomputes the hash with the stored salt and compares it
// against expectedHash in constant time.
func VerifyPassword(password string, expectedHash, salt []byte) bool {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return hmac.Equal(mac.Sum(nil), expectedHash)
}

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*-_"

	temporaryPasswordLength = 12
)

// GenerateTemporaryPassword returns a random 12-character password used by
// the reset flow. One uppercase letter, one digit and one lowercase letter
// are always drawn, so the output satisfies ValidateStrongPassword.
func GenerateTemporaryPassword() (string, error) {
	all := upperChars + lowerChars + digitChars + symbolChars

	pick := func(charset string) (byte, error) {
		n, err := randInt(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return 0, fmt.Errorf("GenerateTemporaryPassword: %w", err)
		}
		return charset[n.Int64()], nil
	}

	pwd := make([]byte, 0, temporaryPasswordLength)
	for _, charset := range []string{upperChars, digitChars, lowerChars} {
		c, err := pick(charset)
		if err != nil {
			return "", err
		}
		pwd = append(pwd, c)
	}
	for len(pwd) < temporaryPasswordLength {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		pwd = append(pwd, c)
	}

	for i := len(pwd) - 1; i > 0; i-- {
		n, err := randInt(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("GenerateTemporaryPassword: %w", err)
		}
		j := n.Int64()
		pwd[i], pwd[j] = pwd[j], pwd[i]
	}
	return string(pwd), nil
}

package model

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func restoreRand() {
	randRead = rand.Read
	randInt = rand.Int
}

func TestValidateStrongPassword(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, pwd := range []string{"Senha123!", "Abcdefg1", "PASSWORD9x", "X1234567"} {
			require.NoError(t, ValidateStrongPassword(pwd), pwd)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cases := map[string]string{
			"too short":    "1234567",
			"no uppercase": "weakpassword1!",
			"no digit":     "NODIGITSHERE",
		}
		for name, pwd := range cases {
			t.Run(name, func(t *testing.T) {
				err := ValidateStrongPassword(pwd)
				require.Error(t, err)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
			})
		}
	})
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreRand)

	hash, salt, err := HashPassword("Senha123!", nil)
	require.NoError(t, err)
	require.Len(t, salt, saltSize)
	require.Len(t, hash, 64) // SHA-512 digest

	// deterministic given the same salt
	again, usedSalt, err := HashPassword("Senha123!", salt)
	require.NoError(t, err)
	require.Equal(t, salt, usedSalt)
	require.Equal(t, hash, again)

	// fresh salts differ
	_, otherSalt, err := HashPassword("Senha123!", nil)
	require.NoError(t, err)
	require.NotEqual(t, salt, otherSalt)

	randRead = func([]byte) (int, error) { return 0, errors.New("rand") }
	_, _, err = HashPassword("Senha123!", nil)
	require.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, salt, err := HashPassword("Senha123!", nil)
	require.NoError(t, err)

	require.True(t, VerifyPassword("Senha123!", hash, salt))
	require.False(t, VerifyPassword("wrong", hash, salt))

	// same hash against a different salt never verifies
	_, otherSalt, err := HashPassword("Senha123!", nil)
	require.NoError(t, err)
	require.False(t, VerifyPassword("Senha123!", hash, otherSalt))
}

func TestGenerateTemporaryPassword(t *testing.T) {
	t.Cleanup(restoreRand)

	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		pwd, err := GenerateTemporaryPassword()
		require.NoError(t, err)
		require.Len(t, pwd, temporaryPasswordLength)
		require.NoError(t, ValidateStrongPassword(pwd))
		seen[pwd] = struct{}{}
	}
	require.Len(t, seen, 50, "temporary passwords should not repeat")

	randInt = func(io.Reader, *big.Int) (*big.Int, error) { return nil, errors.New("rand") }
	_, err := GenerateTemporaryPassword()
	require.Error(t, err)
}

func TestTemporaryPasswordCharset(t *testing.T) {
	all := upperChars + lowerChars + digitChars + symbolChars
	for i := 0; i < 10; i++ {
		pwd, err := GenerateTemporaryPassword()
		require.NoError(t, err)
		for _, c := range pwd {
			require.True(t, strings.ContainsRune(all, c), "unexpected character %q", c)
		}
	}
}

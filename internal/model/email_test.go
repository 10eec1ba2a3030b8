package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmail(t *testing.T) {
	t.Run("normalizes", func(t *testing.T) {
		email, err := ParseEmail("  Ana@X.Com ")
		require.NoError(t, err)
		require.Equal(t, "ana@x.com", email.String())
	})

	t.Run("equality by normalized value", func(t *testing.T) {
		a, err := ParseEmail("ANA@x.com")
		require.NoError(t, err)
		b, err := ParseEmail("ana@X.COM")
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "not-an-email", "a@", "@x.com", "a b@x.com"} {
			_, err := ParseEmail(raw)
			require.Error(t, err, raw)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		}
	})
}

func TestEmailJSON(t *testing.T) {
	email, err := ParseEmail("ana@x.com")
	require.NoError(t, err)

	data, err := json.Marshal(email)
	require.NoError(t, err)
	require.JSONEq(t, `"ana@x.com"`, string(data))

	var decoded Email
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, email, decoded)

	require.Error(t, json.Unmarshal([]byte(`"bad"`), &decoded))
}

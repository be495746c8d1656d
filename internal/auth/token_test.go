package auth_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carevault/internal/auth"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := auth.NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("u1", "patient")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "patient", claims.Role)
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	m := auth.NewTokenManager("test-secret", time.Hour)
	other := auth.NewTokenManager("other-secret", time.Hour)

	token, err := m.Issue("u1", "patient")
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	m := auth.NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("u1", "patient")
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.Error(t, err)
}

func TestVerifyToken(t *testing.T) {
	auth.Init(&auth.Config{Secret: "test-secret", TokenTTL: time.Hour})

	token, err := auth.IssueToken("u1", "doctor")
	require.NoError(t, err)

	r, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	userID, role, err := auth.VerifyToken(r)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "doctor", role)
}

func TestVerifyToken_BadHeader(t *testing.T) {
	auth.Init(&auth.Config{Secret: "test-secret", TokenTTL: time.Hour})

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"no bearer prefix", "abc"},
		{"garbage token", "Bearer garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			_, _, err := auth.VerifyToken(r)
			require.Error(t, err)
		})
	}
}

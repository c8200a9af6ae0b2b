package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestIdentityFromToken(t *testing.T) {
	tests := []struct {
		name          string
		claims        jwt.Claims
		expectedError error
		check         func(*testing.T, *Identity)
	}{
		{
			name: "full profile claims",
			claims: jwt.MapClaims{
				"sub":         "auth0|abc123",
				"email":       "ada@example.com",
				"given_name":  "Ada",
				"family_name": "Lovelace",
			},
			check: func(t *testing.T, id *Identity) {
				assert.Equal(t, "auth0|abc123", id.SubjectID)
				assert.Equal(t, "ada@example.com", id.Email)
				assert.Equal(t, "Ada", id.FirstName)
				assert.Equal(t, "Lovelace", id.LastName)
			},
		},
		{
			name:   "subject alone is enough",
			claims: jwt.MapClaims{"sub": "auth0|bare"},
			check: func(t *testing.T, id *Identity) {
				assert.Equal(t, "auth0|bare", id.SubjectID)
				assert.Empty(t, id.Email)
			},
		},
		{
			name:          "missing subject is rejected",
			claims:        jwt.MapClaims{"email": "nosub@example.com"},
			expectedError: ErrNoIdentity,
		},
		{
			name:          "non-string subject is rejected",
			claims:        jwt.MapClaims{"sub": 42},
			expectedError: ErrNoIdentity,
		},
		{
			name:          "non-map claims are rejected",
			claims:        &jwt.RegisteredClaims{Subject: "auth0|typed"},
			expectedError: ErrNoIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := &jwt.Token{Claims: tt.claims}
			identity, err := IdentityFromToken(token)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, identity)
			} else {
				assert.NoError(t, err)
				tt.check(t, identity)
			}
		})
	}
}

func TestActorOwnership(t *testing.T) {
	admin := &Actor{Role: "ADMIN"}
	assert.True(t, admin.IsAdmin())

	client := &Actor{Role: "CLIENT"}
	assert.False(t, client.IsAdmin())
	assert.True(t, client.Owns(client.UserID))
}

// Package auth is the boundary to the external identity provider. The
// provider issues the tokens and manages credentials and sessions; this
// package only verifies what the provider signed and turns the claims into
// a caller identity.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// ErrNoIdentity is returned when a token carries no usable subject.
var ErrNoIdentity = errors.New("no identity in token")

// Identity is the externally-authenticated caller as supplied by the
// identity provider: an opaque subject id plus profile basics.
type Identity struct {
	SubjectID string
	Email     string
	FirstName string
	LastName  string
}

// IdentityFromToken extracts the caller identity from a verified token.
// Claim names follow the provider's OIDC-style profile claims.
func IdentityFromToken(token *jwt.Token) (*Identity, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoIdentity
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrNoIdentity
	}

	email, _ := claims["email"].(string)
	firstName, _ := claims["given_name"].(string)
	lastName, _ := claims["family_name"].(string)

	return &Identity{
		SubjectID: sub,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

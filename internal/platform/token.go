package platform

import (
	"crypto/ecdsa"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// UserTokenHeader carries the platform-signed identity token on every inbound
// request from the embedded frontend.
const UserTokenHeader = "x-whop-user-token"

const userTokenIssuer = "urn:whopcom:exp-proxy"

var ErrInvalidUserToken = errors.New("invalid platform user token")

// TokenVerifier checks the ES256 signature of a platform user token and
// extracts the member's user id from its subject claim.
type TokenVerifier struct {
	appID     string
	publicKey *ecdsa.PublicKey
}

func NewTokenVerifier(appID string, publicKeyPEM string) (*TokenVerifier, error) {
	publicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, errors.New("parse platform token public key: " + err.Error())
	}
	return &TokenVerifier{appID: appID, publicKey: publicKey}, nil
}

func (verifier *TokenVerifier) VerifyUserToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidUserToken
	}

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (any, error) { return verifier.publicKey, nil },
		jwt.WithValidMethods([]string{"ES256"}),
		jwt.WithIssuer(userTokenIssuer),
		jwt.WithAudience(verifier.appID),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidUserToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrInvalidUserToken
	}
	return claims.Subject, nil
}

// DevVerifier short-circuits token verification to a fixed user id for local
// development, where no platform proxy signs requests.
type DevVerifier struct {
	UserID string
}

func (verifier DevVerifier) VerifyUserToken(string) (string, error) {
	if verifier.UserID == "" {
		return "", ErrInvalidUserToken
	}
	return verifier.UserID, nil
}

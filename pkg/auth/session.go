package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters
const (
	argon2Time      = 1
	argon2Memory    = 64 * 1024
	argon2Threads   = 4
	argon2KeyLength = 32
	saltLength      = 16
)

// ErrInvalidSession is returned for missing, malformed, or expired session tokens.
var ErrInvalidSession = errors.New("invalid session token")

// SessionAuth issues and verifies the signed admin session tokens carried in
// the admin cookie. There is exactly one admin identity; the token carries only
// the subject and expiry.
type SessionAuth struct {
	secretKey []byte
	expiry    time.Duration
}

// NewSessionAuth creates a session authority with the given signing secret.
func NewSessionAuth(secret string, expiry time.Duration) (*SessionAuth, error) {
	if secret == "" {
		return nil, errors.New("session secret cannot be empty")
	}
	if expiry == 0 {
		expiry = 7 * 24 * time.Hour
	}
	return &SessionAuth{
		secretKey: []byte(secret),
		expiry:    expiry,
	}, nil
}

// Expiry returns the configured session lifetime.
func (a *SessionAuth) Expiry() time.Duration {
	return a.expiry
}

// IssueToken creates a signed session token for the admin identity.
func (a *SessionAuth) IssueToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.expiry)),
		Issuer:    "musefolio",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature and expiry of a session token and returns
// the admin email it was issued for.
func (a *SessionAuth) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidSession
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}

// HashPassword hashes a password using Argon2id. Format: argon2id$salt$hash
// with base64 raw encoding, matching VerifyPassword below.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLength)

	saltEncoded := base64.RawStdEncoding.EncodeToString(salt)
	hashEncoded := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("argon2id$%s$%s", saltEncoded, hashEncoded), nil
}

// VerifyPassword compares a submitted password against the configured admin
// credential. The stored value may be an argon2id hash or, for local setups,
// the plain password; both paths compare in constant time.
func VerifyPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "argon2id$") {
		ok, err := verifyArgon2(stored, password)
		return err == nil && ok
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

func verifyArgon2(hashedPassword, password string) (bool, error) {
	parts := strings.Split(strings.TrimPrefix(hashedPassword, "argon2id$"), "$")
	if len(parts) != 2 {
		return false, fmt.Errorf("invalid hash format: expected 2 parts, got %d", len(parts))
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}

	actualHash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLength)

	return subtle.ConstantTimeCompare(expectedHash, actualHash) == 1, nil
}

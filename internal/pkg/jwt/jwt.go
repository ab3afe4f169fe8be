package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/relay-service/internal/model"
)

const realtimeTokenTTL = 30 * time.Minute

// Manager signs and validates every token class the service touches: the web
// session cookie, the mobile bearer token, and Centrifugo connect/subscribe
// tokens. Each class has its own secret.
type Manager struct {
	sessionSecret  []byte
	mobileSecret   []byte
	realtimeSecret []byte
	mobileTTL      time.Duration
}

func New(sessionSecret, mobileSecret, realtimeSecret string, mobileTTL time.Duration) *Manager {
	return &Manager{
		sessionSecret:  []byte(sessionSecret),
		mobileSecret:   []byte(mobileSecret),
		realtimeSecret: []byte(realtimeSecret),
		mobileTTL:      mobileTTL,
	}
}

func (m *Manager) NewSessionToken(userID string) (string, error) {
	now := time.Now()
	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.sessionSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken returns the user id carried by a session cookie value.
func (m *Manager) ValidateSessionToken(tokenString string) (string, error) {
	claims := &model.SessionClaims{}
	if err := m.parse(tokenString, claims, m.sessionSecret); err != nil {
		return "", fmt.Errorf("failed to validate session token: %w", err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("session token has no subject")
	}

	return claims.Subject, nil
}

func (m *Manager) NewMobileToken(userID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(m.mobileTTL)

	claims := model.MobileClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UID: userID,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.mobileSecret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign mobile token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateMobileToken returns the user id carried by a mobile bearer token.
func (m *Manager) ValidateMobileToken(tokenString string) (string, error) {
	claims := &model.MobileClaims{}
	if err := m.parse(tokenString, claims, m.mobileSecret); err != nil {
		return "", fmt.Errorf("failed to validate mobile token: %w", err)
	}

	if claims.UID == "" {
		return "", fmt.Errorf("mobile token has no uid")
	}

	return claims.UID, nil
}

func (m *Manager) NewConnectToken(userID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(realtimeTokenTTL)

	claims := model.CentrifugoConnectClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.realtimeSecret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign connect token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (m *Manager) NewSubscribeToken(userID, channel string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(realtimeTokenTTL)

	claims := model.CentrifugoSubscribeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Channel: channel,
		UserID:  userID,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.realtimeSecret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign subscribe token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (m *Manager) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return err
	}

	if !token.Valid {
		return fmt.Errorf("invalid token")
	}

	return nil
}

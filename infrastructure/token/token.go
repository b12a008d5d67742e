// Package token issues and verifies the two credential classes of a viewer
// session: a short-lived access token carrying identity claims and a
// long-lived refresh token carrying only the user id.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"streamhub/domain/model"
)

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims are the identity claims encoded in an access token.
type AccessClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

// RefreshClaims carry only the user id.
type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the manager's clock. Test hook.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func (m *Manager) IssueAccess(user model.User) (string, error) {
	issued := m.now()
	claims := AccessClaims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.accessSecret)
}

func (m *Manager) IssueRefresh(userID string) (string, error) {
	issued := m.now()
	claims := RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.refreshTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.refreshSecret)
}

// VerifyAccess checks signature and expiry only; it performs no store
// lookup.
func (m *Manager) VerifyAccess(tokenString string) (*AccessClaims, error) {
	var claims AccessClaims
	if err := m.verify(tokenString, &claims, m.accessSecret); err != nil {
		return nil, err
	}
	return &claims, nil
}

// VerifyRefresh checks signature and expiry and returns the claimed user id.
func (m *Manager) VerifyRefresh(tokenString string) (string, error) {
	var claims RefreshClaims
	if err := m.verify(tokenString, &claims, m.refreshSecret); err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (m *Manager) verify(tokenString string, claims jwt.Claims, secret []byte) error {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return secret, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}

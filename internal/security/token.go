package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Jazz7-Dev/FoodY.com/configs"
)

// TokenService issues and verifies the signed, time-limited bearer tokens
// that carry user identity end to end.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenService(cfg configs.Config) *TokenService {
	ttl := cfg.Security.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret:   []byte(cfg.Security.JWTSecret),
		issuer:   cfg.Security.Issuer,
		audience: cfg.Security.Audience,
		ttl:      ttl,
	}
}

// Issue produces a signed token embedding the user identity, valid for the
// configured window (1 hour by default).
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":    s.issuer,
		"aud":    s.audience,
		"iat":    now.Unix(),
		"nbf":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
		"userId": userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify recovers the embedded user id if the token is well-formed, signed
// with our key, and unexpired. Invalid is a normal outcome: the second
// return is false and no error escapes.
func (s *TokenService) Verify(raw string) (string, bool) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithLeeway(30*time.Second)) // small clock skew

	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	if s.issuer != "" && claims["iss"] != s.issuer {
		return "", false
	}
	if s.audience != "" && claims["aud"] != s.audience {
		return "", false
	}
	uid, _ := claims["userId"].(string)
	if uid == "" {
		return "", false
	}
	return uid, true
}

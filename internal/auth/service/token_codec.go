package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/pointward/gateway/internal/auth/domain"
	apperrors "github.com/pointward/gateway/internal/errors"
)

// tokenClaims is the wire shape of a capability token payload.
type tokenClaims struct {
	EntityID    string            `json:"entity_id"`
	AccessLevel string            `json:"access_level"`
	Extra       map[string]string `json:"extra,omitempty"`
	jwt.RegisteredClaims
}

// tokenCodec implements TokenCodec with HMAC-SHA256 signatures.
type tokenCodec struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenCodec creates a TokenCodec signing with the given shared secret.
// Issued tokens expire after the given duration.
func NewTokenCodec(secret string, expiration time.Duration) TokenCodec {
	return &tokenCodec{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Issue signs a claim set with HS256 and returns the encoded token.
func (t *tokenCodec) Issue(
	entityID string,
	level authDomain.AccessLevel,
	extra map[string]string,
) (string, error) {
	if entityID == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "entity id is required")
	}
	if !level.IsValid() {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "unknown access level")
	}

	now := time.Now()
	claims := tokenClaims{
		EntityID:    entityID,
		AccessLevel: string(level),
		Extra:       extra,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign capability token")
	}
	return token, nil
}

// Verify recomputes the signature over header+payload and validates expiry.
// All decode and comparison failures collapse into ErrForbidden so callers
// never learn why a tampered token was rejected.
func (t *tokenCodec) Verify(token string) (*authDomain.Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	var claims tokenClaims
	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "token verification failed")
	}
	if !parsed.Valid {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "token is not valid")
	}

	return t.toDomain(&claims)
}

// Peek decodes the payload segment without checking the signature.
func (t *tokenCodec) Peek(token string) (*authDomain.Claims, bool) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, false
	}

	domainClaims, err := t.toDomain(&claims)
	if err != nil {
		return nil, false
	}
	return domainClaims, true
}

// toDomain validates the required fields of a decoded payload.
func (t *tokenCodec) toDomain(claims *tokenClaims) (*authDomain.Claims, error) {
	if claims.EntityID == "" {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "token has no entity id")
	}

	level := authDomain.AccessLevel(claims.AccessLevel)
	if !level.IsValid() {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "token has an unknown access level")
	}

	return &authDomain.Claims{
		EntityID:    claims.EntityID,
		AccessLevel: level,
		Extra:       claims.Extra,
	}, nil
}

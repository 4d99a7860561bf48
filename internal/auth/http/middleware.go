// Package http provides the request-time access guard built on the token codec.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/pointward/gateway/internal/auth/domain"
	authService "github.com/pointward/gateway/internal/auth/service"
	apperrors "github.com/pointward/gateway/internal/errors"
	"github.com/pointward/gateway/internal/httputil"
)

// RequireLevel admits a caller into a route group only with a valid capability
// token at exactly the required privilege tier.
//
// The check runs in three stages:
//  1. No Authorization header → 401 Unauthorized, no further work.
//  2. Unsigned peek: if the payload cannot be decoded, or the *claimed* tier
//     differs from the required one, reject with 403 before paying for the
//     signature comparison.
//  3. Full verification: recompute the HMAC and validate expiry; any failure
//     is 403 Forbidden.
//
// On success the verified claims are stored in the request context and
// available to handlers via GetClaims. Tiers are compared by equality only;
// a route requiring one tier never admits another.
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer").
func RequireLevel(
	codec authService.TokenCodec,
	level authDomain.AccessLevel,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			logger.Debug("access guard: missing or malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Cheap rejection on the claimed tier before verifying the signature.
		claimed, ok := codec.Peek(token)
		if !ok || claimed.AccessLevel != level {
			logger.Debug("access guard: claimed tier rejected",
				slog.String("required_level", string(level)))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		claims, err := codec.Verify(token)
		if err != nil {
			logger.Debug("access guard: verification failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithClaims(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("access guard: admitted",
			slog.String("entity_id", claims.EntityID),
			slog.String("access_level", string(claims.AccessLevel)))

		c.Next()
	}
}

// BearerToken extracts the bearer token from the Authorization header.
// Returns false if the header is absent or malformed.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

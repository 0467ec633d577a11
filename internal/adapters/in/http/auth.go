package http

import (
	"context"
	"errors"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/errs"

	"github.com/go-chi/jwtauth/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	actorContextKey = "actor"
	tokenAlgorithm  = "HS256"
)

// ActorResolver classifies the user a verified token belongs to.
type ActorResolver interface {
	Handle(ctx context.Context, userID kernel.ID) (identity.Actor, error)
}

// NewTokenAuth builds the HS256 verifier for bearer tokens.
func NewTokenAuth(secret string) *jwtauth.JWTAuth {
	return jwtauth.New(tokenAlgorithm, []byte(secret), nil)
}

// Authenticate verifies the bearer token, resolves its subject into an Actor
// and stores it on the context. Requests without a valid token, or whose
// subject is not a known user, get 401.
func Authenticate(ja *jwtauth.JWTAuth, resolver ActorResolver, logger *zap.Logger) echo.MiddlewareFunc {
	verify := echo.WrapMiddleware(jwtauth.Verifier(ja))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			ctx := c.Request().Context()

			token, _, err := jwtauth.FromContext(ctx)
			if err != nil || token == nil {
				return unauthorized(c, "Missing or invalid bearer token")
			}

			userID, err := kernel.ParseID("sub", token.Subject())
			if err != nil {
				return unauthorized(c, "Token subject is not a user id")
			}

			actor, err := resolver.Handle(ctx, userID)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return unauthorized(c, "Unknown user")
			}
			if err != nil {
				logger.Error("resolve actor", zap.Int64("user_id", userID.Int64()), zap.Error(err))
				return unauthorized(c, "Could not authenticate")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		})
	}
}

func actorFrom(c echo.Context) identity.Actor {
	actor, _ := c.Get(actorContextKey).(identity.Actor)
	return actor
}

package http

import (
	"net/http"
	"strings"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// NewAuthMiddleware returns an Echo middleware that resolves the acting
// principal from a bearer token. Claims carry the account id (sub), email,
// role and the optional consumer_id / restaurant_id links. A missing or
// invalid token yields 401 before the handler runs.
func NewAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return unauthorized(ctx, "missing bearer token")
			}

			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil {
				return unauthorized(ctx, "invalid token")
			}

			requester, err := actorFromClaims(claims)
			if err != nil {
				return unauthorized(ctx, "invalid token claims")
			}

			ctx.Set(actorContextKey, requester)
			return next(ctx)
		}
	}
}

func actorFromClaims(claims jwt.MapClaims) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(stringClaim(claims, "sub"))
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(stringClaim(claims, "role"))
	if err != nil {
		return actor.Actor{}, err
	}

	consumerID, err := optionalUUIDClaim(claims, "consumer_id")
	if err != nil {
		return actor.Actor{}, err
	}
	restaurantID, err := optionalUUIDClaim(claims, "restaurant_id")
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, stringClaim(claims, "email"), role, consumerID, restaurantID)
}

func stringClaim(claims jwt.MapClaims, name string) string {
	value, _ := claims[name].(string)
	return value
}

func optionalUUIDClaim(claims jwt.MapClaims, name string) (*kernel.UUID, error) {
	raw := stringClaim(claims, name)
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

// actorFromContext returns the principal stored by the auth middleware.
// Routes mounted without the middleware see a zero actor, which downstream
// validation rejects as unauthorized.
func actorFromContext(ctx echo.Context) actor.Actor {
	requester, _ := ctx.Get(actorContextKey).(actor.Actor)
	return requester
}

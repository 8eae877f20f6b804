package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/labstack/echo/v4"

	"github.com/homehero/homehero-server/internal/errs"
	"github.com/homehero/homehero-server/internal/server"
)

// AuthMiddleware resolves the caller identity from a Clerk session token.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{server: s}
}

// Identify is an optional-authentication middleware.
//
// Without an Authorization header the request passes through untouched and
// handlers fall back to the uid/userEmail the request carries. A bearer
// token that fails verification is rejected with 401. A verified token
// stores its subject under UserIDKey, which handlers prefer over any uid
// in the request.
//
// When no Clerk secret key is configured the middleware is a no-op.
func (auth *AuthMiddleware) Identify() echo.MiddlewareFunc {
	if auth.server.Config.Auth.SecretKey == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	verify := echo.WrapMiddleware(clerkhttp.WithHeaderAuthorization(
		clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(auth.writeUnauthorized)),
	))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			if claims, ok := clerk.SessionClaimsFromContext(c.Request().Context()); ok {
				auth.setCaller(c, claims.Subject)
			}
			return next(c)
		})
	}
}

// setCaller records the verified subject. It runs before EnhanceContext,
// so it logs through the server logger rather than the request logger.
func (auth *AuthMiddleware) setCaller(c echo.Context, subject string) {
	c.Set(UserIDKey, subject)

	auth.server.Logger.Debug().
		Str("request_id", GetRequestID(c)).
		Str("user_id", subject).
		Msg("caller identified from session token")
}

func (auth *AuthMiddleware) writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	httpErr := errs.NewUnauthorizedError("Invalid or expired session token", true)

	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(httpErr.Status)

	if err := json.NewEncoder(w).Encode(httpErr); err != nil {
		auth.server.Logger.Error().
			Err(err).
			Str("function", "Identify").
			Msg("failed to write unauthorized response")
		return
	}

	auth.server.Logger.Warn().
		Str("function", "Identify").
		Str("path", r.URL.Path).
		Msg("session token verification failed")
}

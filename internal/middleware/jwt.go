package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // HTTP status codes for responses

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/thamir0022/hueify/internal/utils"
)

// AccessCookieName is the cookie carrying the session token.  It is set on
// sign-in, cleared on sign-out, and read here on every gated request.
const AccessCookieName = "access_token"

// UserIDKey is the echo context key under which the authenticated user's
// id is stored for downstream handlers.
const UserIDKey = "user_id"

// unauthorizedMessage is returned for both a missing and an invalid token;
// the client remedy is the same either way.
const unauthorizedMessage = "Unauthorized, Signin to contionue"

// SessionAuth returns an Echo middleware that validates the session token
// carried in the access cookie and injects the bound user id into the
// request context.  The provided secret must match the one used when
// issuing tokens.  The gate is synchronous: it either short-circuits the
// request with a 401 response or passes it through with the identity
// attached under UserIDKey.
func SessionAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // The token travels in a cookie rather than an Authorization
            // header; browsers attach it automatically after sign-in.
            cookie, err := c.Cookie(AccessCookieName)
            if err != nil || cookie.Value == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": unauthorizedMessage})
            }
            uid, err := utils.ParseSessionToken(secret, cookie.Value)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": unauthorizedMessage})
            }
            c.Set(UserIDKey, uid)
            return next(c)
        }
    }
}

// CurrentUserID extracts the authenticated user id stored by SessionAuth.
// The second return is false when the gate did not run for this request.
func CurrentUserID(c echo.Context) (uint64, bool) {
    uid, ok := c.Get(UserIDKey).(uint64)
    return uid, ok
}

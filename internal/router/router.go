package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework handles the routing

	"github.com/thamir0022/hueify/internal/handler"
	"github.com/thamir0022/hueify/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the sign-up/sign-in/sign-out endpoints.  None of
// them require an existing session; sign-out simply clears the cookie and
// is idempotent.  The limiter middleware throttles credential guessing
// and sign-up floods; pass a pass-through middleware to disable.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	e.POST("/sign-up", a.SignUp, limiter)
	e.POST("/sign-in", a.SignIn, limiter)
	e.POST("/sign-out", a.SignOut)
}

// RegisterHistory registers the color-history endpoints behind the session
// gate.  Every request must carry a valid access cookie; the gate injects
// the caller's user id before the handlers run.
func RegisterHistory(e *echo.Echo, h *handler.HistoryHandler, jwtSecret string) {
	gate := middleware.SessionAuth(jwtSecret)
	e.POST("/color-history", h.AddColor, gate)
	e.GET("/get-history", h.GetAllHistory, gate)
}

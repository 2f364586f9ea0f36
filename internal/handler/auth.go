package handler

import (
    "context"  // context with cancellation for store calls
    "errors"   // sentinel error comparison
    "net/http" // HTTP status codes and cookie primitives
    "time"     // timeouts and cookie expiry

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/thamir0022/hueify/internal/config"
    "github.com/thamir0022/hueify/internal/middleware"
    "github.com/thamir0022/hueify/internal/model"
    "github.com/thamir0022/hueify/internal/repository"
    "github.com/thamir0022/hueify/internal/utils"
)

// UserStore is the credential-store handle injected into the auth
// handlers. repository.UserRepo is the MySQL implementation; tests use
// in-memory fakes.
type UserStore interface {
    Create(ctx context.Context, firstName, lastName, email, password string, cost int) (model.User, error)
    GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthHandler bundles dependencies for the sign-up/sign-in/sign-out endpoints.
type AuthHandler struct {
    Cfg   config.Config
    Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type signUpReq struct {
    FirstName string `json:"firstName"`
    LastName  string `json:"lastName"`
    Email     string `json:"email"`
    Password  string `json:"password"`
}
type signInReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

// userPart is the user shape returned to clients: never carries the
// password hash.
type userPart struct {
    ID        uint64 `json:"id"`
    FirstName string `json:"firstName"`
    LastName  string `json:"lastName"`
    Email     string `json:"email"`
}

func toUserPart(u model.User) userPart {
    return userPart{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// SignUp: create the user and return it with the password stripped.
func (h *AuthHandler) SignUp(c echo.Context) error {
    var req signUpReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "All feilds are required!"})
    }
    if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "All feilds are required!"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.Create(ctx, req.FirstName, req.LastName, req.Email, req.Password, h.Cfg.BcryptCost)
    if err != nil {
        if errors.Is(err, repository.ErrEmailExists) {
            return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User already exist!"})
        }
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
    }

    return c.JSON(http.StatusOK, echo.Map{
        "success": true,
        "message": "New user created!",
        "newUser": toUserPart(u),
    })
}

// SignIn: verify credentials, set the session cookie and return the profile.
// Unknown emails and wrong passwords are reported distinctly (404 vs 400),
// matching the established client contract.
func (h *AuthHandler) SignIn(c echo.Context) error {
    var req signInReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "All feilds are required!"})
    }
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "All feilds are required!"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "User not found!"})
        }
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
    }
    if !utils.VerifyPassword(u.PasswordHash, req.Password) {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid email or password!"})
    }

    tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, h.Cfg.TokenTTLMin)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
    }
    c.SetCookie(&http.Cookie{
        Name:     middleware.AccessCookieName,
        Value:    tok.Token,
        Path:     "/",
        Expires:  tok.Exp,
        HttpOnly: true,
    })

    return c.JSON(http.StatusOK, echo.Map{
        "message": "Sign In Success",
        "user":    toUserPart(u),
    })
}

// SignOut: expire the session cookie. Always succeeds, session or not.
func (h *AuthHandler) SignOut(c echo.Context) error {
    c.SetCookie(&http.Cookie{
        Name:     middleware.AccessCookieName,
        Value:    "",
        Path:     "/",
        Expires:  time.Unix(0, 0),
        MaxAge:   -1,
        HttpOnly: true,
    })
    return c.JSON(http.StatusOK, echo.Map{"message": "Sign Out Success"})
}

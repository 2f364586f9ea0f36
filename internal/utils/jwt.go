package utils // package utils provides helpers for session token creation and verification

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// SessionToken represents a signed HS256 JWT bound to a user along with its
// expiry.  The Token field contains the serialized JWT carried to the client
// in the access cookie.  Validity is purely a function of signature and
// expiry; nothing is stored server-side.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// ErrInvalidToken is returned by ParseSessionToken for any token that fails
// signature, expiry or claim checks.  Callers do not need to distinguish
// the failure modes; all of them mean "sign in again".
var ErrInvalidToken = errors.New("invalid or expired token")

// NewSessionToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, and a TTL in minutes.  The claims carry the
// user id under "id" plus the standard exp and iat timestamps.
func NewSessionToken(secret string, userID uint64, ttlMin int) (SessionToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "id":  userID,
        "exp": exp.Unix(),
        "iat": now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies signature and expiry of a serialized session
// token and returns the user id it is bound to.  Tokens signed with a
// different method or secret, expired tokens, and tokens without a usable
// "id" claim all yield ErrInvalidToken.
func ParseSessionToken(secret, raw string) (uint64, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return 0, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return 0, ErrInvalidToken
    }
    // JWT numeric values decode as float64.
    id, ok := claims["id"].(float64)
    if !ok || id <= 0 {
        return 0, ErrInvalidToken
    }
    return uint64(id), nil
}

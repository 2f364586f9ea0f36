package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thamir0022/hueify/internal/config"
	"github.com/thamir0022/hueify/internal/middleware"
	"github.com/thamir0022/hueify/internal/model"
	"github.com/thamir0022/hueify/internal/repository"
	"github.com/thamir0022/hueify/internal/utils"
)

// --- fakes ---

type fakeUserStore struct {
	createFn     func(ctx context.Context, firstName, lastName, email, password string, cost int) (model.User, error)
	getByEmailFn func(ctx context.Context, email string) (model.User, error)
}

func (f *fakeUserStore) Create(ctx context.Context, firstName, lastName, email, password string, cost int) (model.User, error) {
	if f.createFn != nil {
		return f.createFn(ctx, firstName, lastName, email, password, cost)
	}
	return model.User{}, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return model.User{}, repository.ErrNotFound
}

func testConfig() config.Config {
	return config.Config{JWTSecret: "test-secret", TokenTTLMin: 60, BcryptCost: 4}
}

// postJSON drives an echo handler with a JSON body and returns the recorder.
func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

// --- sign-up ---

func TestSignUpMissingFields(t *testing.T) {
	h := NewAuthHandler(testConfig(), &fakeUserStore{})

	for _, body := range []string{
		`{}`,
		`{"firstName":"A","lastName":"B","email":"a@b.com"}`,
		`{"firstName":"","lastName":"B","email":"a@b.com","password":"secret"}`,
	} {
		rec := postJSON(t, h.SignUp, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "All feilds are required!")
	}
}

func TestSignUpSuccessStripsPassword(t *testing.T) {
	store := &fakeUserStore{
		createFn: func(_ context.Context, firstName, lastName, email, password string, cost int) (model.User, error) {
			assert.Equal(t, 4, cost)
			return model.User{ID: 1, FirstName: firstName, LastName: lastName, Email: email, PasswordHash: "$2a$hash"}, nil
		},
	}
	h := NewAuthHandler(testConfig(), store)

	rec := postJSON(t, h.SignUp, `{"firstName":"A","lastName":"B","email":"a@b.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		NewUser map[string]any `json:"newUser"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "New user created!", resp.Message)
	assert.Equal(t, "a@b.com", resp.NewUser["email"])
	assert.NotContains(t, resp.NewUser, "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestSignUpDuplicateEmail(t *testing.T) {
	store := &fakeUserStore{
		createFn: func(context.Context, string, string, string, string, int) (model.User, error) {
			return model.User{}, repository.ErrEmailExists
		},
	}
	h := NewAuthHandler(testConfig(), store)

	rec := postJSON(t, h.SignUp, `{"firstName":"A","lastName":"B","email":"a@b.com","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exist!")
}

// --- sign-in ---

func TestSignInUnknownEmail(t *testing.T) {
	h := NewAuthHandler(testConfig(), &fakeUserStore{})

	rec := postJSON(t, h.SignIn, `{"email":"nobody@b.com","password":"secret"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found!")
}

func TestSignInWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret", 4)
	require.NoError(t, err)
	store := &fakeUserStore{
		getByEmailFn: func(_ context.Context, email string) (model.User, error) {
			return model.User{ID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	h := NewAuthHandler(testConfig(), store)

	rec := postJSON(t, h.SignIn, `{"email":"a@b.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password!")
	assert.Empty(t, rec.Result().Cookies())
}

func TestSignInSuccessSetsSessionCookie(t *testing.T) {
	hash, err := utils.HashPassword("secret", 4)
	require.NoError(t, err)
	store := &fakeUserStore{
		getByEmailFn: func(_ context.Context, email string) (model.User, error) {
			return model.User{ID: 7, FirstName: "A", LastName: "B", Email: email, PasswordHash: hash}, nil
		},
	}
	h := NewAuthHandler(testConfig(), store)

	rec := postJSON(t, h.SignIn, `{"email":"a@b.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign In Success")
	assert.NotContains(t, rec.Body.String(), hash)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AccessCookieName, cookies[0].Name)

	// The issued token must pass the gate's own verification.
	uid, err := utils.ParseSessionToken("test-secret", cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), uid)
}

func TestSignInMissingFields(t *testing.T) {
	h := NewAuthHandler(testConfig(), &fakeUserStore{})

	rec := postJSON(t, h.SignIn, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All feilds are required!")
}

// --- sign-out ---

func TestSignOutClearsCookie(t *testing.T) {
	h := NewAuthHandler(testConfig(), &fakeUserStore{})

	// No session required; sign-out is idempotent.
	rec := postJSON(t, h.SignOut, ``)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign Out Success")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AccessCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

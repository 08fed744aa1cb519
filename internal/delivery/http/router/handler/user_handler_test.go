package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fittrack/internal/delivery/http/validator"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUsecase records inputs and returns canned outputs.
type stubUserUsecase struct {
	registerOutput *usecase.RegisterOutput
	registerErr    error
	loginOutput    *usecase.LoginOutput
	loginErr       error
	lastRegister   *usecase.RegisterUserInput
}

func (s *stubUserUsecase) Register(_ context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	s.lastRegister = input

	return s.registerOutput, s.registerErr
}

func (s *stubUserUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOutput, s.loginErr
}

func (s *stubUserUsecase) RefreshToken(_ context.Context, _ *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	return &usecase.RefreshTokenOutput{AccessToken: "new-access"}, nil
}

func (s *stubUserUsecase) Logout(_ context.Context, _ *usecase.LogoutInput) error {
	return nil
}

func newHandlerTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register(t *testing.T) {
	userID := uuid.New()
	uc := &stubUserUsecase{
		registerOutput: &usecase.RegisterOutput{
			User: &usecase.UserView{ID: userID, Email: "test@example.com", Role: "user"},
		},
	}
	h := NewUserHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodPost, "/api/users/register",
		`{"email":"test@example.com","password":"Password123!","firstName":"Test","lastName":"User"}`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test@example.com", uc.lastRegister.Email)
	assert.Equal(t, "Test", uc.lastRegister.FirstName)

	// The response carries the user view, never a password hash.
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	assert.Equal(t, true, parsed["success"])
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	uc := &stubUserUsecase{}
	h := NewUserHandler(uc, discardLogger())

	c, _ := newHandlerTestContext(t, http.MethodPost, "/api/users/register",
		`{"email":"test@example.com","password":"short"}`)

	err := h.Register(c)

	// Validation failures surface as an HTTP 400 error for the error handler.
	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Nil(t, uc.lastRegister)
}

func TestUserHandler_Signin(t *testing.T) {
	userID := uuid.New()
	uc := &stubUserUsecase{
		loginOutput: &usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User:         &usecase.UserView{ID: userID, Email: "test@example.com"},
		},
	}
	h := NewUserHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodPost, "/api/users/signin",
		`{"email":"test@example.com","password":"Password123!"}`)

	err := h.Signin(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"access-token"`)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"refresh-token"`)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newHandlerTestContext(t, http.MethodGet, "/health", "")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

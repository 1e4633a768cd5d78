package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roamly/booking-api/internal/api/middleware"
	"github.com/roamly/booking-api/internal/core/ports"
	"github.com/roamly/booking-api/internal/session"
)

// AuthHandler handles signup, login, logout and profile retrieval. On
// success the session token travels back as an HttpOnly cookie; clients may
// also lift it from the response for bearer use.
type AuthHandler struct {
	authService ports.AuthService
	cookies     session.Manager
}

func NewAuthHandler(authService ports.AuthService, cookies session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

// Signup creates a new account and starts a session.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tkn, _, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.cookies.Set(c.Response(), tkn)
	return c.JSON(http.StatusOK, messageResponse{Message: "Account created"})
}

// Login authenticates an account and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tkn, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.cookies.Set(c.Response(), tkn)
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged in"})
}

// Logout clears the session cookie. Idempotent: logging out while already
// logged out is a no-op success.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Identity is best-effort here: the audit trail wants to know who left,
	// but an anonymous or expired caller still gets a clean 200.
	userID, _ := c.Get(middleware.CtxUserID).(string)
	email, _ := c.Get(middleware.CtxEmail).(string)
	h.authService.Logout(c.Request().Context(), userID, email)

	h.cookies.Clear(c.Response())
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

// Profile returns the caller's live user record. Role and balance are
// resolved from the credential store, not from the token claims, so
// administrative changes made after issuance are reflected.
//
// @Summary      Get the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{User: userView{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Balance: user.Balance,
	}})
}

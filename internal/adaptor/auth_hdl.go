package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"webuild-dashboard/internal/dto/request"
	"webuild-dashboard/internal/dto/response"
	"webuild-dashboard/internal/usecase"
	"webuild-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
		log:     log,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful. Check your email to verify your account.", resp)
}

// VerifyEmail handles POST /api/auth/verify-email. The token arrives in the
// body; the query string is accepted as a fallback for emailed links.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		req.Token = r.URL.Query().Get("token")
	}
	if req.Token == "" {
		utils.ResponseBadRequest(w, "Verification token is required", nil)
		return
	}

	if err := h.service.VerifyEmail(r.Context(), req.Token); err != nil {
		respondServiceError(w, h.log, err, "verify email")
		return
	}

	utils.ResponseSuccess(w, "Email verified successfully", nil)
}

// ResendVerification handles POST /api/auth/resend-verification. The reply is
// identical whether or not the email maps to a pending account.
func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req request.ResendVerificationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ResendVerification(r.Context(), req.Email); err != nil {
		respondServiceError(w, h.log, err, "resend verification")
		return
	}

	utils.ResponseSuccess(w, "If the account exists, a verification email has been sent", nil)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sess, err := h.service.Login(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "login")
		return
	}

	h.setSessionCookie(w, sess.Token.String(), sess.ExpiresAt)
	utils.ResponseSuccess(w, "Login successful", response.SessionToResponse(sess))
}

// Logout handles POST /api/auth/logout. Logging out without a session still
// succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.config.Auth.CookieName); err == nil && cookie.Value != "" {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			respondServiceError(w, h.log, err, "logout")
			return
		}
	}

	h.clearSessionCookie(w)
	utils.ResponseSuccess(w, "Logout successful", nil)
}

// Check handles GET /api/auth/check. It always answers 200; the payload says
// whether a live session exists.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(h.config.Auth.CookieName); err == nil {
		token = cookie.Value
	}

	sess, err := h.service.CurrentSession(r.Context(), token)
	if err != nil {
		respondServiceError(w, h.log, err, "check session")
		return
	}

	utils.ResponseSuccess(w, "Session status", response.SessionToResponse(sess))
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.config.Auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.config.App.Production(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.config.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.App.Production(),
		SameSite: http.SameSiteLaxMode,
	})
}

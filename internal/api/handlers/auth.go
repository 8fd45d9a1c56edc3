package handlers

import (
	"net/http"
	"time"

	"github.com/popo0015/body-tracker/internal/api/middleware"
	"github.com/popo0015/body-tracker/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService  *service.AuthService
	secureCookie bool
	log          *zap.SugaredLogger
}

func NewAuthHandler(authService *service.AuthService, secureCookie bool, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
		log:          log,
	}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.authService.Signup(r.Context(), service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		writeError(w, h.log, "auth.Signup", err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "User created"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, h.log, "auth.Login", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		MaxAge:   int(time.Until(result.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged in"})
}

// Logout succeeds whether or not the caller had a live session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if !h.endSession(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
}

// LogoutRedirect is the form-post variant used by browser pages.
func (h *AuthHandler) LogoutRedirect(w http.ResponseWriter, r *http.Request) {
	if !h.endSession(w, r) {
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) endSession(w http.ResponseWriter, r *http.Request) bool {
	if err := h.authService.Logout(r.Context(), middleware.SessionToken(r)); err != nil {
		writeError(w, h.log, "auth.Logout", err)
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
	return true
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

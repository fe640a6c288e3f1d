package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"stellarforge/internal/auth"
	"stellarforge/internal/shared/cookies"
	"stellarforge/internal/shared/errors"
	"stellarforge/internal/shared/response"
)

type AuthHandler struct {
	service *auth.Service
	logger  *slog.Logger
}

func NewAuthHandler(service *auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "auth", "operation", "login", "remote_addr", r.RemoteAddr)

	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	if req.Username == "" || req.Password == "" {
		response.Error(w, r, logger, errors.Validation("username and password are required"))
		return
	}

	result, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	cookies.SetAuthCookie(w, result.Token)
	response.Success(w, http.StatusOK, result)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookies.ClearAuthCookie(w)
	response.Success(w, http.StatusOK, map[string]string{"message": "logged out"})
}

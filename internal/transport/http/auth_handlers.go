package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"churchapp/internal/domains"
	"churchapp/internal/httpx"
	"churchapp/internal/service"
	"churchapp/internal/storage"
)

type AuthHandlers struct {
	service AuthServices
}

type AuthServices interface {
	Register(ctx context.Context, account domains.AccountRegister) error
	Login(ctx context.Context, email string, password string) (string, string, error)
	Refresh(ctx context.Context, token string) (string, string, error)
	Me(ctx context.Context, token string) (domains.Account, error)
}

func NewAuthHandlers(service AuthServices) *AuthHandlers {
	return &AuthHandlers{
		service: service,
	}
}

func (srv *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	account, err := httpx.ReadBody[domains.AccountRegister](*r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := srv.service.Register(r.Context(), account); err != nil {
		if errors.Is(err, storage.ErrUserExist) {
			httpx.Error(w, http.StatusConflict, "El correo ya está registrado")
			return
		}
		slog.Error("Register failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "No se pudo registrar la cuenta")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (srv *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	loginData, err := httpx.ReadBody[LoginData](*r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	accessToken, refreshToken, err := srv.service.Login(r.Context(), loginData.Email, loginData.Password)
	if err != nil {
		if errors.Is(err, service.PasswordIncorrect) || errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusUnauthorized, "Credenciales incorrectas")
			return
		}
		slog.Error("Login failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "No se pudo iniciar sesión")
		return
	}

	httpx.JSON(w, http.StatusOK, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (srv *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	request, err := httpx.ReadBody[struct {
		RefreshToken string `json:"refresh_token"`
	}](*r)
	if err != nil || request.RefreshToken == "" {
		httpx.Error(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	accessToken, refreshToken, err := srv.service.Refresh(r.Context(), request.RefreshToken)
	if err != nil {
		if errors.Is(err, service.TokenIncorrect) {
			httpx.Error(w, http.StatusUnauthorized, "Token inválido")
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusUnauthorized, "Cuenta no encontrada")
			return
		}
		slog.Error("Refresh failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "No se pudo renovar la sesión")
		return
	}

	httpx.JSON(w, http.StatusOK, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (srv *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	account, err := srv.service.Me(r.Context(), strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	httpx.JSON(w, http.StatusOK, account)
}

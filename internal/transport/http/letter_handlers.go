package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"churchapp/internal/domains"
	"churchapp/internal/httpx"
	"churchapp/internal/storage"
)

type LetterHandlers struct {
	service LetterServices
}

type LetterServices interface {
	GenerateLetter(ctx context.Context, payload domains.LetterGenerate, generatedBy string) (domains.GeneratedLetter, error)
	ListGeneratedLetters(ctx context.Context) ([]domains.GeneratedLetter, error)
}

func NewLetterHandlers(service LetterServices) *LetterHandlers {
	return &LetterHandlers{
		service: service,
	}
}

func (h *LetterHandlers) GenerateLetter(w http.ResponseWriter, r *http.Request) {
	account, ok := httpx.AccountFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	payload, err := httpx.ReadBody[domains.LetterGenerate](*r)
	if err != nil {
		slog.Error("GenerateLetter read body err", "err", err)
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.TemplateID == 0 || payload.MemberID == 0 {
		httpx.Error(w, http.StatusBadRequest, "template_id y member_id son requeridos")
		return
	}

	letter, err := h.service.GenerateLetter(r.Context(), payload, account.FullName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Plantilla o miembro no encontrado")
			return
		}
		slog.Error("GenerateLetter failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "No se pudo generar la carta")
		return
	}

	httpx.JSON(w, http.StatusCreated, letter)
}

func (h *LetterHandlers) ListGeneratedLetters(w http.ResponseWriter, r *http.Request) {
	generated, err := h.service.ListGeneratedLetters(r.Context())
	if err != nil {
		slog.Error("ListGeneratedLetters failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "No se pudo obtener el historial de cartas")
		return
	}

	httpx.JSON(w, http.StatusOK, generated)
}

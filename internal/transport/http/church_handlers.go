package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"churchapp/internal/domains"
	"churchapp/internal/httpx"
	"churchapp/internal/service"
	"churchapp/internal/storage"
)

type ChurchHandlers struct {
	service ChurchServices
}

type ChurchServices interface {
	GetChurch(ctx context.Context) (domains.Church, error)
	UpdateChurch(ctx context.Context, payload domains.ChurchUpdate) (domains.Church, error)
}

func NewChurchHandlers(service ChurchServices) *ChurchHandlers {
	return &ChurchHandlers{
		service: service,
	}
}

func (h *ChurchHandlers) GetChurch(w http.ResponseWriter, r *http.Request) {
	church, err := h.service.GetChurch(r.Context())
	if err != nil {
		slog.Error("GetChurch failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "No se pudo obtener la iglesia")
		return
	}

	httpx.JSON(w, http.StatusOK, church)
}

func (h *ChurchHandlers) UpdateChurch(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.ReadBody[domains.ChurchUpdate](*r)
	if err != nil {
		slog.Error("UpdateChurch read body err", "err", err)
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	church, err := h.service.UpdateChurch(r.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChurchNameRequired):
			httpx.Error(w, http.StatusBadRequest, "El nombre de la iglesia es requerido")
		case errors.Is(err, storage.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Iglesia no encontrada")
		default:
			slog.Error("UpdateChurch failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "No se pudo actualizar la iglesia")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, church)
}

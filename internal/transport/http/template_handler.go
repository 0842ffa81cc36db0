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

type TemplateHandlers struct {
	service TemplateServices
}

type TemplateServices interface {
	CreateTemplate(ctx context.Context, payload domains.LetterTemplateCreate, userId int64) (domains.LetterTemplate, error)
	ListTemplates(ctx context.Context, filter domains.TemplateFilter) ([]domains.LetterTemplate, error)
	UpdateTemplate(ctx context.Context, templateId int64, payload domains.LetterTemplateUpdate) (domains.LetterTemplate, error)
	DeleteTemplate(ctx context.Context, templateId int64) error
}

func NewTemplateHandlers(service TemplateServices) *TemplateHandlers {
	return &TemplateHandlers{
		service: service,
	}
}

func (h *TemplateHandlers) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserIdFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	payload, err := httpx.ReadBody[domains.LetterTemplateCreate](*r)
	if err != nil {
		slog.Error("CreateTemplate read body err", "err", err)
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.CreateTemplate(r.Context(), payload, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNameRequired), errors.Is(err, service.ErrTemplateContentRequired):
			httpx.Error(w, http.StatusBadRequest, "Nombre y contenido son requeridos")
		case errors.Is(err, storage.ErrTemplateExists):
			httpx.Error(w, http.StatusConflict, "Ya existe una plantilla con ese nombre")
		default:
			slog.Error("CreateTemplate failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "No se pudo crear la plantilla")
		}
		return
	}

	httpx.JSON(w, http.StatusCreated, created)
}

func (h *TemplateHandlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	filter := domains.TemplateFilter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	templates, err := h.service.ListTemplates(r.Context(), filter)
	if err != nil {
		slog.Error("ListTemplates failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "No se pudieron obtener las plantillas")
		return
	}

	httpx.JSON(w, http.StatusOK, templates)
}

func (h *TemplateHandlers) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	templateId, err := httpx.GetId(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Identificador de plantilla inválido")
		return
	}

	payload, err := httpx.ReadBody[domains.LetterTemplateUpdate](*r)
	if err != nil {
		slog.Error("UpdateTemplate read body err", "err", err)
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.UpdateTemplate(r.Context(), templateId, payload)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Plantilla no encontrada")
		case errors.Is(err, service.ErrTemplateNameRequired), errors.Is(err, service.ErrTemplateContentRequired):
			httpx.Error(w, http.StatusBadRequest, "Nombre y contenido son requeridos")
		case errors.Is(err, storage.ErrTemplateExists):
			httpx.Error(w, http.StatusConflict, "Ya existe una plantilla con ese nombre")
		default:
			slog.Error("UpdateTemplate failed", "err", err, "template_id", templateId)
			httpx.Error(w, http.StatusInternalServerError, "No se pudo actualizar la plantilla")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, updated)
}

func (h *TemplateHandlers) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	templateId, err := httpx.GetId(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Identificador de plantilla inválido")
		return
	}

	if err := h.service.DeleteTemplate(r.Context(), templateId); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Plantilla no encontrada")
			return
		}
		slog.Error("DeleteTemplate failed", "err", err, "template_id", templateId)
		httpx.Error(w, http.StatusInternalServerError, "No se pudo eliminar la plantilla")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

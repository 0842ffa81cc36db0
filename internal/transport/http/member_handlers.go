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

type MemberHandlers struct {
	service MemberServices
}

type MemberServices interface {
	GetMemberByID(ctx context.Context, memberId int64) (domains.Member, error)
	ListMembers(ctx context.Context) ([]domains.Member, error)
}

func NewMemberHandlers(service MemberServices) *MemberHandlers {
	return &MemberHandlers{
		service: service,
	}
}

func (h *MemberHandlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListMembers(r.Context())
	if err != nil {
		slog.Error("ListMembers failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "No se pudieron obtener los miembros")
		return
	}

	httpx.JSON(w, http.StatusOK, members)
}

func (h *MemberHandlers) GetMemberById(w http.ResponseWriter, r *http.Request) {
	memberId, err := httpx.GetId(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Identificador de miembro inválido")
		return
	}

	member, err := h.service.GetMemberByID(r.Context(), memberId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Miembro no encontrado")
			return
		}
		slog.Error("GetMemberById failed", "err", err, "member_id", memberId)
		httpx.Error(w, http.StatusInternalServerError, "No se pudo obtener el miembro")
		return
	}

	httpx.JSON(w, http.StatusOK, member)
}

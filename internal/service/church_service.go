package service

import (
	"context"
	"log/slog"
	"strings"

	"churchapp/internal/domains"
)

type ChurchService struct {
	provider ChurchProvider
}

func NewChurchService(provider ChurchProvider) *ChurchService {
	return &ChurchService{
		provider: provider,
	}
}

func (h *ChurchService) GetChurch(ctx context.Context) (domains.Church, error) {
	church, err := h.provider.GetChurch(ctx)
	if err != nil {
		slog.Error("Get church error", "err", err)
		return domains.Church{}, err
	}
	return church, nil
}

func (h *ChurchService) UpdateChurch(ctx context.Context, payload domains.ChurchUpdate) (domains.Church, error) {
	church, err := h.provider.GetChurch(ctx)
	if err != nil {
		return domains.Church{}, err
	}

	if payload.Name != nil {
		if strings.TrimSpace(*payload.Name) == "" {
			return domains.Church{}, ErrChurchNameRequired
		}
		church.Name = *payload.Name
	}
	if payload.PastorName != nil {
		church.PastorName = payload.PastorName
	}
	if payload.Phone != nil {
		church.Phone = payload.Phone
	}
	if payload.Address != nil {
		church.Address = payload.Address
	}
	if payload.City != nil {
		church.City = payload.City
	}
	if payload.LogoUrl != nil {
		church.LogoUrl = payload.LogoUrl
	}

	saved, err := h.provider.UpdateChurch(ctx, church)
	if err != nil {
		slog.Error("Update church error", "err", err)
		return domains.Church{}, err
	}
	return saved, nil
}

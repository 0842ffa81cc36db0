package service

import (
	"context"
	"log/slog"

	"churchapp/internal/domains"
)

type MemberService struct {
	provider MemberProvider
}

func NewMemberService(provider MemberProvider) *MemberService {
	return &MemberService{
		provider: provider,
	}
}

func (h *MemberService) GetMemberByID(ctx context.Context, memberId int64) (domains.Member, error) {
	member, err := h.provider.GetMemberByID(ctx, memberId)
	if err != nil {
		slog.Error("Get member error", "err", err, "member_id", memberId)
		return domains.Member{}, err
	}
	return member, nil
}

func (h *MemberService) ListMembers(ctx context.Context) ([]domains.Member, error) {
	members, err := h.provider.ListMembers(ctx)
	if err != nil {
		slog.Error("List members error", "err", err)
		return nil, err
	}
	return members, nil
}

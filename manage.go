package nexus

import (
	"context"
	"net/http"
	"net/url"

	"github.com/talx-hub/nexus-sdk/internal/httpclient"
	"github.com/talx-hub/nexus-sdk/internal/model"
)

const (
	pathMembers            = "/manage/members"
	pathTiers              = "/manage/tiers"
	pathScheduledRevShares = "/manage/scheduled-rev-shares"
)

// ManageService covers creator-program management: members, codes, tiers
// and scheduled revenue shares.
type ManageService struct {
	d dispatcher
}

// GetAllMembers fetches a page of members of the group.
func (s *ManageService) GetAllMembers(ctx context.Context, params *ListParams,
) (*AllMembersResponse, error) {
	var resp AllMembersResponse
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPublic,
		Method:   http.MethodGet,
		Path:     pathMembers,
		Query:    params.values(),
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return &resp, nil
}

func (s *ManageService) GetMemberByPlayerID(ctx context.Context, playerID string, params *GroupParams,
) (*Member, error) {
	var resp Member
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPublic,
		Method:   http.MethodGet,
		Path:     pathMembers + "/player/" + url.PathEscape(playerID),
		Query:    params.values(),
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return &resp, nil
}

func (s *ManageService) GetMemberByCodeOrID(ctx context.Context, codeOrID string, params *GroupParams,
) (*Member, error) {
	var resp Member
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPublic,
		Method:   http.MethodGet,
		Path:     pathMembers + "/" + url.PathEscape(codeOrID),
		Query:    params.values(),
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return &resp, nil
}

// GenerateCode creates a member and a managed code for the player.
func (s *ManageService) GenerateCode(ctx context.Context, req GenerateCodeRequest, params *GroupParams,
) (*GenerateCodeResponse, error) {
	var resp GenerateCodeResponse
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPrivate,
		Method:   http.MethodPost,
		Path:     pathMembers,
		Query:    params.values(),
		Body:     req,
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return &resp, nil
}

// LinkExistingNexus links a player to an existing Nexus account using an auth code.
func (s *ManageService) LinkExistingNexus(ctx context.Context, req LinkExistingNexusRequest, params *GroupParams,
) (*LinkExistingNexusResponse, error) {
	var resp LinkExistingNexusResponse
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPrivate,
		Method:   http.MethodPost,
		Path:     pathMembers + "/link",
		Query:    params.values(),
		Body:     req,
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return &resp, nil
}

func (s *ManageService) GenerateAuthCode(ctx context.Context, playerID string,
) (*AuthCodeResponse, error) {
	var resp AuthCodeResponse
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPrivate,
		Method:   http.MethodGet,
		Path:     pathMembers + "/" + url.PathEscape(playerID) + "/authCode",
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return &resp, nil
}

func (s *ManageService) GetGroupTiers(ctx context.Context, params *ListParams,
) (*GroupTiersResponse, error) {
	var resp GroupTiersResponse
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPrivate,
		Method:   http.MethodGet,
		Path:     pathTiers,
		Query:    params.values(),
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return &resp, nil
}

// GetTierDetails fetches a tier together with its members.
func (s *ManageService) GetTierDetails(ctx context.Context, tierID string, params *GroupParams,
) (*TierDetailsResponse, error) {
	var resp TierDetailsResponse
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPrivate,
		Method:   http.MethodGet,
		Path:     pathTiers + "/" + url.PathEscape(tierID),
		Query:    params.values(),
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return &resp, nil
}

// ScheduleRevShare schedules a temporary revenue share for the group.
func (s *ManageService) ScheduleRevShare(ctx context.Context, req ScheduleRevShareRequest, params *GroupParams,
) (*ScheduleRevShareResponse, error) {
	var resp ScheduleRevShareResponse
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPrivate,
		Method:   http.MethodPost,
		Path:     pathScheduledRevShares,
		Query:    params.values(),
		Body:     req,
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return &resp, nil
}

func (s *ManageService) ListScheduledRevShares(ctx context.Context, params *ListParams,
) (*ListScheduledRevSharesResponse, error) {
	var resp ListScheduledRevSharesResponse
	err := s.d.Do(ctx, httpclient.Request{
		KeyClass: model.KeyPrivate,
		Method:   http.MethodGet,
		Path:     pathScheduledRevShares,
		Query:    params.values(),
	}, &resp)
	if err != nil {
		return nil, err //nolint: wrapcheck // kinds are part of the API
	}
	return &resp, nil
}

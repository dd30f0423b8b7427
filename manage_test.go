package nexus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestListParams_values(t *testing.T) {
	tests := []struct {
		name   string
		params *ListParams
		want   url.Values
	}{
		{"nil", nil, nil},
		{"empty", &ListParams{}, url.Values{}},
		{
			"all",
			&ListParams{Page: 2, PageSize: 25, GroupID: "-XgND9kJQRre_UzlaptAE"},
			url.Values{"page": {"2"}, "pageSize": {"25"}, "groupId": {"-XgND9kJQRre_UzlaptAE"}},
		},
		{"group only", &ListParams{GroupID: "g"}, url.Values{"groupId": {"g"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.values())
		})
	}
}

func TestGroupParams_values(t *testing.T) {
	var p *GroupParams
	assert.Nil(t, p.values())
	assert.Nil(t, (&GroupParams{}).values())
	assert.Equal(t, url.Values{"groupId": {"g"}}, (&GroupParams{GroupID: "g"}).values())
}

func TestManageService_GetAllMembers(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Get("/manage/members", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"groupId":         r.URL.Query().Get("groupId"),
			"groupName":       "Creators",
			"currentPage":     1,
			"currentPageSize": 10,
			"totalCount":      1,
			"members": []map[string]any{{
				"id":       "m-1",
				"name":     "popcornfrog",
				"playerId": "p-1",
				"codes": []map[string]any{
					{"code": "POPCORN", "isPrimary": true, "isGenerated": false, "isManaged": true},
				},
			}},
		})
	})

	resp, err := api.client(t).Manage.GetAllMembers(context.Background(),
		&ListParams{Page: 1, PageSize: 10, GroupID: "g-1"})
	require.NoError(t, err)

	assert.Equal(t, "g-1", resp.GroupID)
	assert.Equal(t, 1, resp.TotalCount)
	require.Len(t, resp.Members, 1)
	assert.Equal(t, "p-1", resp.Members[0].PlayerID)
	require.Len(t, resp.Members[0].Codes, 1)
	assert.True(t, resp.Members[0].Codes[0].IsPrimary)
	assert.True(t, resp.Members[0].Codes[0].IsManaged)

	got := api.lastCall(t)
	assert.Equal(t, []string{"1"}, got.Query["page"])
	assert.Equal(t, []string{"10"}, got.Query["pageSize"])
	assert.Equal(t, []string{"g-1"}, got.Query["groupId"])
}

func TestManageService_GetMemberByPlayerID_escapesPath(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Get("/manage/members/player/{playerID}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"playerId": chi.URLParam(r, "playerID")})
	})

	member, err := api.client(t).Manage.GetMemberByPlayerID(context.Background(), "a b", nil)
	require.NoError(t, err)
	assert.Equal(t, "a b", member.PlayerID)
	assert.Empty(t, api.lastCall(t).Query)
}

func TestManageService_GenerateCode(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Post("/manage/members", func(w http.ResponseWriter, r *http.Request) {
		var req GenerateCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, GenerateCodeResponse{
			GroupID:        "g-1",
			PlayerID:       req.PlayerID,
			PlayerMetadata: req.PlayerMetadata,
			Code:           "CODE-" + req.PlayerID,
		})
	})

	resp, err := api.client(t).Manage.GenerateCode(context.Background(), GenerateCodeRequest{
		PlayerID:       "p-7",
		PlayerMetadata: &PlayerMetadata{DisplayName: "Dusty"},
	}, &GroupParams{GroupID: "g-1"})
	require.NoError(t, err)
	assert.Equal(t, "CODE-p-7", resp.Code)
	require.NotNil(t, resp.PlayerMetadata)
	assert.Equal(t, "Dusty", resp.PlayerMetadata.DisplayName)

	assert.JSONEq(t, `{"playerId":"p-7","playerMetadata":{"displayName":"Dusty"}}`,
		string(api.lastCall(t).Body))
}

func TestManageService_GenerateAuthCode_sendsNoBody(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Get("/manage/members/{playerID}/authCode", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, AuthCodeResponse{AuthCode: "123456", ExpiresAt: "2024-01-01T00:10:00Z"})
	})

	resp, err := api.client(t).Manage.GenerateAuthCode(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "123456", resp.AuthCode)
	assert.Empty(t, api.lastCall(t).Body)
}

func TestManageService_tiersAndRevShares(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Get("/manage/tiers", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"groupTiers": []map[string]any{{"id": "t-1", "name": "Gold", "revShare": 0.15, "memberCount": 3}},
		})
	})
	api.router.Get("/manage/tiers/{tierID}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id":       chi.URLParam(r, "tierID"),
			"name":     "Gold",
			"revShare": 0.15,
			"members":  []map[string]any{{"id": "m-1", "playerId": "p-1"}},
		})
	})
	api.router.Post("/manage/scheduled-rev-shares", func(w http.ResponseWriter, r *http.Request) {
		var req ScheduleRevShareRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		writeJSON(w, http.StatusOK, ScheduleRevShareResponse{
			ID:                "s-1",
			StartDate:         req.StartDate,
			EndDate:           req.EndDate,
			TierRevenueShares: req.TierRevenueShares,
		})
	})
	api.router.Get("/manage/scheduled-rev-shares", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"scheduledRevShares": []map[string]any{{"id": "s-1", "status": "Scheduled"}},
		})
	})
	c := api.client(t)
	ctx := context.Background()

	tiers, err := c.Manage.GetGroupTiers(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tiers.GroupTiers, 1)
	assert.Equal(t, 3, tiers.GroupTiers[0].MemberCount)

	tier, err := c.Manage.GetTierDetails(ctx, "t-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "t-1", tier.ID)
	require.Len(t, tier.Members, 1)

	scheduled, err := c.Manage.ScheduleRevShare(ctx, ScheduleRevShareRequest{
		StartDate:         "2024-06-01T00:00:00Z",
		EndDate:           "2024-06-30T00:00:00Z",
		TierRevenueShares: []TierRevenueShare{{TierID: "t-1", RevShare: 0.2}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "s-1", scheduled.ID)
	require.Len(t, scheduled.TierRevenueShares, 1)
	assert.InDelta(t, 0.2, scheduled.TierRevenueShares[0].RevShare, 1e-9)
	assert.NotContains(t, string(api.lastCall(t).Body), "revShare\":null")

	list, err := c.Manage.ListScheduledRevShares(ctx, &ListParams{Page: 2})
	require.NoError(t, err)
	require.Len(t, list.ScheduledRevShares, 1)
	assert.Equal(t, "Scheduled", list.ScheduledRevShares[0].Status)
}

func TestManageService_concurrentCallsAreCorrelated(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Get("/manage/members", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		writeJSON(w, http.StatusOK, map[string]any{
			"currentPage": page,
			"groupName":   fmt.Sprintf("group-%d", page),
		})
	})
	c := api.client(t)

	const n = 20
	results := make([]*AllMembersResponse, n)
	g, ctx := errgroup.WithContext(context.Background())
	for i := range n {
		g.Go(func() error {
			resp, err := c.Manage.GetAllMembers(ctx, &ListParams{Page: i + 1})
			results[i] = resp
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i, resp := range results {
		require.NotNil(t, resp)
		assert.Equal(t, i+1, resp.CurrentPage)
		assert.Equal(t, fmt.Sprintf("group-%d", i+1), resp.GroupName)
	}
	assert.Len(t, api.calls(), n)
}

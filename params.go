package nexus

import (
	"net/url"
	"strconv"
)

// ListParams are the paging and group filters of list endpoints. Zero fields are not sent.
type ListParams struct {
	GroupID  string
	Page     int
	PageSize int
}

// GroupParams selects the creator program when the account has more than one.
type GroupParams struct {
	GroupID string
}

func (p *ListParams) values() url.Values {
	if p == nil {
		return nil
	}
	v := url.Values{}
	if p.Page != 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize != 0 {
		v.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if p.GroupID != "" {
		v.Set("groupId", p.GroupID)
	}
	return v
}

func (p *GroupParams) values() url.Values {
	if p == nil || p.GroupID == "" {
		return nil
	}
	return url.Values{"groupId": {p.GroupID}}
}

// Package models holds the console's view of backend resources.
package models

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
)

// Pagination is the paging block of list responses.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// Page is a list response. The backend answers with a bare array, with
// {items, pagination} or with {data, total}; all three decode here.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// Total returns the backend total when known, else the number of items.
func (p *Page[T]) Total() int {
	if p.Pagination.Total > 0 {
		return p.Pagination.Total
	}
	return len(p.Items)
}

func (p *Page[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		p.Items = items
		p.Pagination = Pagination{Total: len(items)}
		return nil
	}

	var env struct {
		Items      []T         `json:"items"`
		Data       []T         `json:"data"`
		Total      int         `json:"total"`
		Pagination *Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	p.Items = env.Items
	if p.Items == nil {
		p.Items = env.Data
	}
	switch {
	case env.Pagination != nil:
		p.Pagination = *env.Pagination
	default:
		p.Pagination = Pagination{Total: env.Total}
	}
	return nil
}

// ListParams are the query parameters shared by list views.
type ListParams struct {
	Page        int
	PerPage     int
	Search      string
	Status      string
	AssetTypeID int64
	AssetID     int64
	Type        string
	Vendor      string
	DateFrom    string
	DateTo      string
}

// Values encodes the non-zero parameters as a query string.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	setInt := func(k string, n int64) {
		if n > 0 {
			v.Set(k, strconv.FormatInt(n, 10))
		}
	}
	setStr := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}

	setInt("page", int64(p.Page))
	setInt("per_page", int64(p.PerPage))
	setStr("search", p.Search)
	setStr("status", p.Status)
	setInt("asset_type_id", p.AssetTypeID)
	setInt("asset_id", p.AssetID)
	setStr("type", p.Type)
	setStr("vendor", p.Vendor)
	setStr("date_from", p.DateFrom)
	setStr("date_to", p.DateTo)
	return v
}

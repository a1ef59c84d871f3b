package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tank-inventory-api/internal/domain"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	tests := []struct {
		name      string
		in        PageRequest
		wantPage  int
		wantLimit int
	}{
		{"vacío", PageRequest{}, 1, 50},
		{"página negativa", PageRequest{Page: -2, Limit: 10}, 1, 10},
		{"límite sobre el máximo", PageRequest{Page: 3, Limit: 500}, 3, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.DefaultPage()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestNewPageResponse(t *testing.T) {
	p := PageRequest{Page: 2, Limit: 10}
	resp := NewPageResponse(p, 25)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNextPage)
	assert.True(t, resp.HasPrevPage)
	assert.Equal(t, 10, p.Offset())

	last := NewPageResponse(PageRequest{Page: 3, Limit: 10}, 25)
	assert.False(t, last.HasNextPage)

	empty := NewPageResponse(PageRequest{Page: 1, Limit: 50}, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNextPage)
	assert.False(t, empty.HasPrevPage)
}

func TestPropertyValues_RoundTrip(t *testing.T) {
	v := decimal.RequireFromString("25.5")
	in := []PropertyValueDTO{{PropertyID: "api", Value: &v}, {PropertyID: "sulfur"}}

	values := ToPropertyValues(in)
	require.Len(t, values, 2)
	assert.True(t, values[0].Value.Valid)
	assert.False(t, values[1].Value.Valid)

	back := FromPropertyValues(values)
	require.NotNil(t, back[0].Value)
	assert.True(t, v.Equal(*back[0].Value))
	assert.Nil(t, back[1].Value)
}

func TestValidatePropertyValues(t *testing.T) {
	verr := &domain.ValidationError{}
	ValidatePropertyValues("properties", []PropertyValueDTO{{PropertyID: "api"}, {}}, verr)
	require.True(t, verr.HasErrors())
	assert.Equal(t, "properties", verr.Details[0].Field)
}

package services_test

import (
	"testing"

	"handiva/internal/repositories"
	"handiva/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberParam(t *testing.T) {
	tests := []struct {
		raw   string
		state services.ParamState
		value float64
	}{
		{"", services.ParamAbsent, 0},
		{"   ", services.ParamAbsent, 0},
		{"10", services.ParamValid, 10},
		{" 49.5 ", services.ParamValid, 49.5},
		{"-3", services.ParamValid, -3},
		{"1e3", services.ParamValid, 1000},
		{"abc", services.ParamInvalid, 0},
		{"10rs", services.ParamInvalid, 0},
		{"NaN", services.ParamInvalid, 0},
		{"Inf", services.ParamInvalid, 0},
	}
	for _, tt := range tests {
		got := services.ParseNumberParam(tt.raw)
		assert.Equal(t, tt.state, got.State, "raw %q", tt.raw)
		if tt.state == services.ParamValid {
			assert.Equal(t, tt.value, got.Value, "raw %q", tt.raw)
		}
	}
}

func TestProductQuery_Filter(t *testing.T) {
	f, err := services.ProductQuery{}.Filter()
	require.NoError(t, err)
	assert.Equal(t, repositories.ProductFilter{Limit: repositories.MaxListResults}, f)

	f, err = services.ProductQuery{
		Material:  "wool",
		Category:  "textile",
		Telangana: "true",
		Q:         " shawl ",
		MinPrice:  "10",
		MaxPrice:  "50",
	}.Filter()
	require.NoError(t, err)
	assert.Equal(t, "wool", f.Material)
	assert.Equal(t, "textile", f.Category)
	assert.True(t, f.TelanganaOnly)
	assert.Equal(t, "shawl", f.Search)
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 10.0, *f.MinPrice)
	assert.Equal(t, 50.0, *f.MaxPrice)

	f, err = services.ProductQuery{MaxPrice: "50"}.Filter()
	require.NoError(t, err)
	assert.Nil(t, f.MinPrice)
	assert.Equal(t, 50.0, *f.MaxPrice)
}

func TestProductQuery_FilterTelanganaLiteral(t *testing.T) {
	for _, v := range []string{"TRUE", "True", "1", "yes", "false", ""} {
		f, err := services.ProductQuery{Telangana: v}.Filter()
		require.NoError(t, err)
		assert.False(t, f.TelanganaOnly, "telangana=%q", v)
	}
}

func TestProductQuery_FilterRejectsBadPrice(t *testing.T) {
	_, err := services.ProductQuery{MinPrice: "cheap"}.Filter()
	require.Error(t, err)
	assert.True(t, services.IsClientError(err))
	assert.Contains(t, err.Error(), "minPrice")

	_, err = services.ProductQuery{MinPrice: "1", MaxPrice: "NaN"}.Filter()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxPrice")
}

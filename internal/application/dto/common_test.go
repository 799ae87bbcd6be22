package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProductRequest_NullIsAbsent(t *testing.T) {
	var in UpdateProductRequest
	body := `{"name": null, "description": "", "tags": null, "dimensions": {}, "stock": 0}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	assert.Nil(t, in.Name)
	require.NotNil(t, in.Description)
	assert.Equal(t, "", *in.Description)
	require.NotNil(t, in.Stock)
	assert.Equal(t, 0, *in.Stock)

	assert.False(t, Present(in.Tags))
	assert.True(t, Present(in.Dimensions))
	assert.False(t, Present(in.SEOData))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 21)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 0, NewPagination(1, 0, 5).TotalPages)
}

package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/localport/internal/domain/entity"
)

func TestNewSuggestionJSON(t *testing.T) {
	sg := entity.NewPortSuggestion(13000, "", "300")

	got := newSuggestionJSON(sg, true)
	assert.Equal(t, "13000", got.Content)
	assert.Equal(t, "300", got.Match)
	assert.True(t, got.Deletable)
	assert.True(t, got.Default)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"content": "13000",
		"description": "<dim>localhost:</dim>1<match>300</match>0",
		"match": "300",
		"deletable": true,
		"default": true
	}`, string(data))
}

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusPublished.Valid())
	assert.True(t, StatusArchived.Valid())
	assert.False(t, Status("deleted").Valid())
	assert.False(t, Status("").Valid())
}

func TestDocumentScanCopiesBuffer(t *testing.T) {
	buf := []byte(`{"a":1}`)
	var d Document
	require.NoError(t, d.Scan(buf))
	buf[2] = 'z'
	assert.Equal(t, `{"a":1}`, string(d))
	assert.True(t, d.IsObject())
}

func TestPageWithBlocksAlwaysEmitsBlocks(t *testing.T) {
	out, err := json.Marshal(PageWithBlocks{Page: Page{Title: "A"}, ContentBlocks: []ContentBlock{}})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "A", decoded["title"])
	assert.Equal(t, []any{}, decoded["content_blocks"])
}

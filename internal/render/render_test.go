package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/dspfmodel/internal/dds"
	"github.com/vk/dspfmodel/internal/render"
	"github.com/vk/dspfmodel/internal/testutil"
)

func TestOutline(t *testing.T) {
	t.Parallel()

	m := dds.Parse(testutil.SampleSource)
	var out bytes.Buffer
	require.NoError(t, render.Outline(&out, "order.dspf", m))

	got := out.String()
	assert.Contains(t, got, "FILE order.dspf  (24x80 *DS3)")
	assert.Contains(t, got, "DSPSIZ(24 80 *DS3)")
	assert.Contains(t, got, "R ORDHDR")
	assert.Contains(t, got, "lines 2..4")
	assert.Contains(t, got, "F ORDNO")
	assert.Contains(t, got, "@2,10")
	assert.Contains(t, got, "C 'Order:' @2,2")
	assert.Contains(t, got, "R ORDWIN")
	assert.Contains(t, got, "10x30 @3,5")
}

func TestJSON(t *testing.T) {
	t.Parallel()

	m := dds.Parse(testutil.SampleSource)
	var out bytes.Buffer
	require.NoError(t, render.JSON(&out, "order.dspf", m))

	var doc struct {
		File        string `json:"file"`
		DefaultSize struct {
			Rows  int    `json:"rows"`
			Cols  int    `json:"cols"`
			Label string `json:"label"`
		} `json:"default_size"`
		Records []struct {
			Name      string `json:"name"`
			StartLine int    `json:"start_line"`
			EndLine   int    `json:"end_line"`
			Size      struct {
				Rows   int  `json:"rows"`
				Window bool `json:"window"`
			} `json:"size"`
			Fields []struct {
				Name string `json:"name"`
			} `json:"fields"`
			Constants []struct {
				Text string `json:"text"`
			} `json:"constants"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))

	assert.Equal(t, "order.dspf", doc.File)
	assert.Equal(t, 24, doc.DefaultSize.Rows)
	assert.Equal(t, "*DS3", doc.DefaultSize.Label)
	require.Len(t, doc.Records, 2)
	assert.Equal(t, "ORDHDR", doc.Records[0].Name)
	require.Len(t, doc.Records[0].Fields, 1)
	assert.Equal(t, "ORDNO", doc.Records[0].Fields[0].Name)
	require.Len(t, doc.Records[0].Constants, 1)
	assert.Equal(t, "'Order:'", doc.Records[0].Constants[0].Text)
	assert.Equal(t, "ORDWIN", doc.Records[1].Name)
	assert.True(t, doc.Records[1].Size.Window)
}

func TestJSON_EmptyDocumentStillValid(t *testing.T) {
	t.Parallel()

	m := dds.Parse("")
	var out bytes.Buffer
	require.NoError(t, render.JSON(&out, "empty.dspf", m))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "empty.dspf", doc["file"])
	assert.Equal(t, []any{}, doc["records"])
}
